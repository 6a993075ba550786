package timefmt

import (
	"fmt"
	"time"
)

// Layout формат времени бронирования "HH:mm DD.MM.YYYY"
const Layout = "15:04 02.01.2006"

// DateLayout формат даты в query-параметрах "YYYY-MM-DD"
const DateLayout = "2006-01-02"

// Format форматирует момент времени в локальной зоне бронирования loc.
// Сервер и клиент используют одну и ту же зону, поэтому строка однозначна.
func Format(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}

// Parse разбирает строку "HH:mm DD.MM.YYYY" в зоне loc
func Parse(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return t, nil
}

// ParseDate разбирает дату "YYYY-MM-DD" в зоне loc (полночь)
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// LoadLocation загружает зону по имени. Пустая строка - time.Local
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
