package models

import (
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// TimeSlotResponse забронированный интервал
type TimeSlotResponse struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
}

// ReservationResponse бронирование пользователя
type ReservationResponse struct {
	ReservationID string             `json:"reservationId"`
	TableID       string             `json:"tableId"`
	ReservedSlots []TimeSlotResponse `json:"reservedSlots"`
}

// GroupedReservationResponse бронирования на один стол за один день
type GroupedReservationResponse struct {
	DeskID         string             `json:"deskId"`
	DeskName       string             `json:"deskName"`
	ReservationIDs []string           `json:"reservationIds"`
	ReservedSlots  []TimeSlotResponse `json:"reservedSlots"`
	Date           string             `json:"date"`
}

// CancelManyRequest отмена группы бронирований
type CancelManyRequest struct {
	ReservationIDs []string `json:"reservationIds"`
}

// FromDomainReservations конвертирует бронирования в ответ
func FromDomainReservations(reservations []domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, ReservationResponse{
			ReservationID: r.ID,
			TableID:       r.DeskID,
			ReservedSlots: fromDomainSlots(r.ReservedSlots),
		})
	}
	return result
}

// FromDomainGrouped конвертирует сгруппированные бронирования в ответ
func FromDomainGrouped(groups []domain.GroupedReservation) []GroupedReservationResponse {
	result := make([]GroupedReservationResponse, 0, len(groups))
	for _, g := range groups {
		result = append(result, GroupedReservationResponse{
			DeskID:         g.DeskID,
			DeskName:       g.DeskName,
			ReservationIDs: g.ReservationIDs,
			ReservedSlots:  fromDomainSlots(g.ReservedSlots),
			Date:           g.Date.Format("2006-01-02"),
		})
	}
	return result
}

func fromDomainSlots(slots []domain.TimeSlot) []TimeSlotResponse {
	result := make([]TimeSlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, TimeSlotResponse{DateFrom: s.From, DateTo: s.To})
	}
	return result
}
