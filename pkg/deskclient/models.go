package deskclient

import (
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type timeSlot struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
}

type desk struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	ReservedSlots []timeSlot `json:"reservedSlots"`
	Reserved      bool       `json:"reserved"`
	ReservedByMe  bool       `json:"reservedByMe"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type desksResponse struct {
	Desks []desk `json:"desks"`
}

type deskInput struct {
	Name string `json:"name"`
}

type loadDesksRequest struct {
	Desks []deskInput `json:"desks"`
}

type renameDeskRequest struct {
	Name string `json:"name"`
}

type slot struct {
	DateFrom    time.Time `json:"dateFrom"`
	DateTo      time.Time `json:"dateTo"`
	IsAvailable bool      `json:"isAvailable"`
}

type slotsResponse struct {
	DeskID   string `json:"deskId"`
	DeskName string `json:"deskName"`
	Mode     string `json:"mode"`
	Slots    []slot `json:"slots"`
}

type createReservationRequest struct {
	DeskID   string `json:"deskId"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

type slotRequest struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

type bookSlotsRequest struct {
	DeskID string        `json:"deskId"`
	Mode   string        `json:"mode"`
	Slots  []slotRequest `json:"slots"`
}

type reservation struct {
	ReservationID string     `json:"reservationId"`
	TableID       string     `json:"tableId"`
	ReservedSlots []timeSlot `json:"reservedSlots"`
}

type reservationsResponse struct {
	Reservations []reservation `json:"reservations"`
}

type groupedReservation struct {
	DeskID         string     `json:"deskId"`
	DeskName       string     `json:"deskName"`
	ReservationIDs []string   `json:"reservationIds"`
	ReservedSlots  []timeSlot `json:"reservedSlots"`
	Date           string     `json:"date"`
}

type groupedResponse struct {
	Groups []groupedReservation `json:"groups"`
}

type cancelManyRequest struct {
	ReservationIDs []string `json:"reservationIds"`
}

type cancelAllResponse struct {
	Cancelled int64 `json:"cancelled"`
}

func toDomainSlots(slots []timeSlot, loc *time.Location) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		result = append(result, domain.TimeSlot{From: s.DateFrom.In(loc), To: s.DateTo.In(loc)})
	}
	return result
}

func toDomainDesks(desks []desk, loc *time.Location) []domain.Desk {
	result := make([]domain.Desk, 0, len(desks))
	for _, d := range desks {
		result = append(result, domain.Desk{
			ID:            d.ID,
			Name:          d.Name,
			ReservedSlots: toDomainSlots(d.ReservedSlots, loc),
			Reserved:      d.Reserved,
			ReservedByMe:  d.ReservedByMe,
			Status:        domain.DeskStatus(d.Status),
			CreatedAt:     d.CreatedAt,
			UpdatedAt:     d.UpdatedAt,
		})
	}
	return result
}

func toDomainReservations(reservations []reservation, loc *time.Location) []domain.Reservation {
	result := make([]domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, domain.Reservation{
			ID:            r.ReservationID,
			DeskID:        r.TableID,
			ReservedSlots: toDomainSlots(r.ReservedSlots, loc),
		})
	}
	return result
}
