package domain

import (
	"fmt"
	"time"
)

// SlotMode гранулярность сетки слотов
type SlotMode string

const (
	SlotModeHourly SlotMode = "hourly"
	SlotModeDaily  SlotMode = "daily"
)

// ParseSlotMode проверяет строковое значение режима
func ParseSlotMode(s string) (SlotMode, error) {
	switch SlotMode(s) {
	case SlotModeHourly, SlotModeDaily:
		return SlotMode(s), nil
	case "":
		return SlotModeHourly, nil
	default:
		return "", fmt.Errorf("unknown slot mode %q", s)
	}
}

// Slot сгенерированный слот-кандидат для выбора пользователем (не хранится)
type Slot struct {
	From        time.Time
	To          time.Time
	IsAvailable bool
}

// TimeSlot возвращает интервал слота
func (s Slot) TimeSlot() TimeSlot {
	return TimeSlot{From: s.From, To: s.To}
}

// BookingRequest запрос на бронирование одного непрерывного интервала стола
type BookingRequest struct {
	DeskID   string
	DateFrom time.Time
	DateTo   time.Time
}
