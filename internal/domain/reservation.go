package domain

import "time"

// Reservation бронирование пользователя
// В БД одна строка хранит ровно один интервал, список нужен для группировки
type Reservation struct {
	ID            string
	DeskID        string
	UserID        string
	ReservedSlots []TimeSlot
	CreatedAt     time.Time
}

// GroupedReservation бронирования пользователя на один стол за один календарный день
type GroupedReservation struct {
	DeskID         string
	DeskName       string
	ReservationIDs []string
	ReservedSlots  []TimeSlot
	Date           time.Time // только дата, полночь в локальной зоне
}
