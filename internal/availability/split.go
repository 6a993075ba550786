package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// SplitByDays раскладывает интервал, захватывающий несколько календарных дней,
// на интервалы по дням с одинаковым временем: время начала берётся из from, время конца из to.
//
// Пример: [09:00 03.05, 18:00 05.05] → [09:00-18:00] 03.05, 04.05, 05.05
//
// Интервал внутри одного дня возвращается как есть
func SplitByDays(from, to time.Time) ([]domain.TimeSlot, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: from=%s, to=%s", domain.ErrInvalidTimeSlot,
			from.Format(time.RFC3339), to.Format(time.RFC3339))
	}

	if domain.IsSameDay(from, to) {
		return []domain.TimeSlot{{From: from, To: to}}, nil
	}

	loc := from.Location()
	to = to.In(loc)
	last := domain.DayOf(to)

	slots := make([]domain.TimeSlot, 0)
	for day := domain.DayOf(from); !day.After(last); day = day.AddDate(0, 0, 1) {
		y, m, d := day.Date()
		slotFrom := time.Date(y, m, d, from.Hour(), from.Minute(), from.Second(), 0, loc)
		slotTo := time.Date(y, m, d, to.Hour(), to.Minute(), to.Second(), 0, loc)

		slot, err := domain.NewTimeSlot(slotFrom, slotTo)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// DaySpan возвращает число календарных дней, которые задевает интервал, в зоне from
// Считается без перебора дней, поэтому годится для проверки до SplitByDays
func DaySpan(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}

	fy, fm, fd := from.Date()
	ty, tm, td := to.In(from.Location()).Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	// Sub упирается в максимум Duration (~292 года), для проверки лимита этого достаточно
	return int(end.Sub(start)/(24*time.Hour)) + 1
}
