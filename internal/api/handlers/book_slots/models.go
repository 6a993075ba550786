package book_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/domain"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations/models"
	bookSlots "github.com/m04kA/SMC-DeskService/internal/usecase/book_slots"
	"github.com/m04kA/SMC-DeskService/pkg/timefmt"
)

// SlotRequest выбранный слот в формате "HH:mm DD.MM.YYYY"
type SlotRequest struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

// BookSlotsRequest HTTP request model
type BookSlotsRequest struct {
	DeskID string        `json:"deskId"`
	Mode   string        `json:"mode"`
	Slots  []SlotRequest `json:"slots"`
}

// BookingRequestResponse непрерывный интервал, в который схлопнулись слоты
type BookingRequestResponse struct {
	DeskID   string    `json:"deskId"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
}

// BookSlotsResponse HTTP response model
type BookSlotsResponse struct {
	Requests     []BookingRequestResponse     `json:"requests"`
	Reservations []models.ReservationResponse `json:"reservations"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *BookSlotsRequest) ToUseCaseRequest(userID string, loc *time.Location) (*bookSlots.Request, error) {
	deskID, err := handlers.ParseID(r.DeskID)
	if err != nil {
		return nil, err
	}

	mode, err := domain.ParseSlotMode(r.Mode)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(r.Slots))
	for i, s := range r.Slots {
		from, err := timefmt.Parse(s.DateFrom, loc)
		if err != nil {
			return nil, fmt.Errorf("slots[%d].dateFrom: %w", i, err)
		}
		to, err := timefmt.Parse(s.DateTo, loc)
		if err != nil {
			return nil, fmt.Errorf("slots[%d].dateTo: %w", i, err)
		}
		slot, err := domain.NewTimeSlot(from, to)
		if err != nil {
			return nil, fmt.Errorf("slots[%d]: %w", i, err)
		}
		slots = append(slots, slot)
	}

	return &bookSlots.Request{
		UserID: userID,
		DeskID: deskID,
		Mode:   mode,
		Slots:  slots,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlots.Response) *BookSlotsResponse {
	requests := make([]BookingRequestResponse, len(resp.Requests))
	for i, req := range resp.Requests {
		requests[i] = BookingRequestResponse{
			DeskID:   req.DeskID,
			DateFrom: req.DateFrom,
			DateTo:   req.DateTo,
		}
	}

	return &BookSlotsResponse{
		Requests:     requests,
		Reservations: models.FromDomainReservations(resp.Reservations),
	}
}
