package web

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pricePrinter = message.NewPrinter(language.MustParse("es-MX"))

var (
	shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}
	longMonths  = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// formatPrice - цена с разделителями разрядов es-MX, например "$1,250,000"
func formatPrice(price float64) string {
	return "$" + pricePrinter.Sprint(number.Decimal(price, number.MaxFractionDigits(2)))
}

// formatShortDate - "09 mar 2024"; нулевая дата не выводится
func formatShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

// formatLongDate - "09 de marzo de 2024"
func formatLongDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return fmt.Sprintf("%02d de %s de %d", t.Day(), longMonths[t.Month()-1], t.Year())
}

func formatYear(year int) string {
	if year <= 0 {
		return "N/A"
	}
	return strconv.Itoa(year)
}

// formatInput - число для value у input type=number
func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
