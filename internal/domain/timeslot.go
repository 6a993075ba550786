package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeSlot возвращается, когда начало интервала не раньше его конца
var ErrInvalidTimeSlot = errors.New("domain: invalid time slot, from must be before to")

// TimeSlot забронированный полуоткрытый интервал [From, To)
type TimeSlot struct {
	From time.Time `json:"dateFrom"`
	To   time.Time `json:"dateTo"`
}

// NewTimeSlot создает интервал с проверкой From < To
func NewTimeSlot(from, to time.Time) (TimeSlot, error) {
	if !from.Before(to) {
		return TimeSlot{}, fmt.Errorf("%w: from=%s, to=%s", ErrInvalidTimeSlot,
			from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return TimeSlot{From: from, To: to}, nil
}

// MustTimeSlot как NewTimeSlot, но паникует на некорректном интервале.
// Только для заведомо корректных констант (генерация сетки, тесты)
func MustTimeSlot(from, to time.Time) TimeSlot {
	slot, err := NewTimeSlot(from, to)
	if err != nil {
		panic(err)
	}
	return slot
}

// Overlaps строгое пересечение: граничащие интервалы НЕ пересекаются
//
// Примеры:
// - [10:00, 11:00) и [10:30, 12:00) → пересекаются
// - [10:00, 11:00) и [11:00, 12:00) → НЕ пересекаются (граничат)
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.From.Before(other.To) && s.To.After(other.From)
}

// Intersects пересечение с учётом границ (замкнутые интервалы)
func (s TimeSlot) Intersects(from, to time.Time) bool {
	return !s.To.Before(from) && !s.From.After(to)
}

// Duration длительность интервала
func (s TimeSlot) Duration() time.Duration {
	return s.To.Sub(s.From)
}

// Equal сравнивает интервалы по моментам времени (без учёта зоны)
func (s TimeSlot) Equal(other TimeSlot) bool {
	return s.From.Equal(other.From) && s.To.Equal(other.To)
}

// DayOf возвращает полночь календарного дня момента t в его зоне
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
