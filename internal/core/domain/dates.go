package domain

import (
	"strings"
	"time"
)

// DateLayout - формат даты без времени, в котором живет дата продажи
const DateLayout = "2006-01-02"

// API отдает даты то в RFC 3339, то без зоны, то просто датой
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	DateLayout,
}

// ParseTimestamp разбирает дату из API. Время без зоны считается UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateOnly приводит дату из API к виду YYYY-MM-DD (в UTC).
// Нераспознанная строка возвращается как есть.
func DateOnly(s string) string {
	t, ok := ParseTimestamp(s)
	if !ok {
		return s
	}
	return t.UTC().Format(DateLayout)
}
