package workflow

import (
	"math"
	"strconv"
	"strings"
)

// ParseLenient разбирает число из текстового поля формы.
// Нераспознанный ввод превращается в 0, отклонять его - дело валидации.
func ParseLenient(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseLenientInt - то же для целых полей (год). Дробная часть отбрасывается,
// значение вне диапазона int дает 0.
func ParseLenientInt(s string) int {
	v := math.Trunc(ParseLenient(s))
	if v >= math.MaxInt || v < math.MinInt {
		return 0
	}
	return int(v)
}

// parseOptional - пустой или нераспознанный текст означает "значения нет"
func parseOptional(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
