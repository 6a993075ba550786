package availability

import (
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// HourlySlots генерирует почасовую сетку на день date: [h:00, h+1:00) для h от 8 до 20.
// Доступность каждого слота проверяется по reserved
func HourlySlots(date time.Time, reserved []domain.TimeSlot) []domain.Slot {
	y, m, d := date.Date()
	loc := date.Location()

	slots := make([]domain.Slot, 0, domain.HourlyLastHour-domain.HourlyFirstHour)
	for hour := domain.HourlyFirstHour; hour < domain.HourlyLastHour; hour++ {
		from := time.Date(y, m, d, hour, 0, 0, 0, loc)
		to := time.Date(y, m, d, hour+1, 0, 0, 0, loc)
		slots = append(slots, newSlot(from, to, reserved))
	}

	return slots
}

// DailySlots генерирует по одному слоту [05:00, 18:00) на каждый день месяца, в котором лежит date
func DailySlots(date time.Time, reserved []domain.TimeSlot) []domain.Slot {
	y, m, _ := date.Date()
	loc := date.Location()

	// Нулевой день следующего месяца - последний день текущего
	daysInMonth := time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()

	slots := make([]domain.Slot, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		from := time.Date(y, m, day, domain.DailyStartHour, 0, 0, 0, loc)
		to := time.Date(y, m, day, domain.DailyEndHour, 0, 0, 0, loc)
		slots = append(slots, newSlot(from, to, reserved))
	}

	return slots
}

// GenerateSlots генерирует сетку в зависимости от режима
func GenerateSlots(mode domain.SlotMode, date time.Time, reserved []domain.TimeSlot) []domain.Slot {
	if mode == domain.SlotModeDaily {
		return DailySlots(date, reserved)
	}
	return HourlySlots(date, reserved)
}

// IsGridSlot проверяет, что интервал совпадает с одним из слотов сетки режима mode
func IsGridSlot(mode domain.SlotMode, slot domain.TimeSlot) bool {
	for _, s := range GenerateSlots(mode, slot.From, nil) {
		if s.From.Equal(slot.From) && s.To.Equal(slot.To) {
			return true
		}
	}
	return false
}

func newSlot(from, to time.Time, reserved []domain.TimeSlot) domain.Slot {
	return domain.Slot{
		From:        from,
		To:          to,
		IsAvailable: IsAvailable(domain.TimeSlot{From: from, To: to}, reserved),
	}
}
