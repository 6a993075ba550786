package domain

import "time"

// DeskStatus состояние стола на текущий день
type DeskStatus string

const (
	DeskStatusAvailable         DeskStatus = "available"
	DeskStatusPartiallyReserved DeskStatus = "partially-reserved"
	DeskStatusFullyReserved     DeskStatus = "fully-reserved"
	DeskStatusReservedByMe      DeskStatus = "reserved-by-me"
)

// Desk стол с его существующими бронированиями
// Reserved, ReservedByMe и Status вычисляются по ReservedSlots и не хранятся
type Desk struct {
	ID            string
	Name          string
	ReservedSlots []TimeSlot
	Reserved      bool
	ReservedByMe  bool
	Status        DeskStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
