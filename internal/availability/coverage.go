package availability

import (
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// IsFullyCovered проверяет, что окно [dayStart, dayEnd) целиком покрыто интервалами без разрывов.
// Пустой набор никогда не считается покрытием
func IsFullyCovered(dayStart, dayEnd time.Time, slots []domain.TimeSlot) bool {
	if len(slots) == 0 {
		return false
	}

	// Merge уже возвращает интервалы, отсортированные по началу
	merged := Merge(slots)

	current := dayStart
	for _, slot := range merged {
		from := maxTime(slot.From, dayStart)
		to := minTime(slot.To, dayEnd)

		if from.After(current) {
			return false
		}

		current = maxTime(current, to)
		if !current.Before(dayEnd) {
			return true
		}
	}

	return !current.Before(dayEnd)
}

// SlotsForDay оставляет интервалы, задевающие календарный день day (включая границы)
func SlotsForDay(slots []domain.TimeSlot, day time.Time) []domain.TimeSlot {
	start := domain.DayOf(day)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)

	result := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Intersects(start, end) {
			result = append(result, s)
		}
	}
	return result
}

// WorkDay возвращает рабочее окно [08:00, 21:00) дня day в его зоне
func WorkDay(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	loc := day.Location()
	return time.Date(y, m, d, domain.WorkDayStartHour, 0, 0, 0, loc),
		time.Date(y, m, d, domain.WorkDayEndHour, 0, 0, 0, loc)
}

// DayStatus классифицирует день стола: свободен, частично занят или занят целиком
func DayStatus(slots []domain.TimeSlot, day time.Time) domain.DeskStatus {
	daySlots := SlotsForDay(slots, day)
	if len(daySlots) == 0 {
		return domain.DeskStatusAvailable
	}

	start, end := WorkDay(day)
	if IsFullyCovered(start, end, daySlots) {
		return domain.DeskStatusFullyReserved
	}
	return domain.DeskStatusPartiallyReserved
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
