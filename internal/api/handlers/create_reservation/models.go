package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-DeskService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-DeskService/pkg/timefmt"
)

// CreateReservationRequest HTTP request model
// dateFrom и dateTo в формате "HH:mm DD.MM.YYYY" в зоне бронирования
type CreateReservationRequest struct {
	DeskID   string `json:"deskId"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservations []models.ReservationResponse `json:"reservations"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID string, loc *time.Location) (*createReservation.Request, error) {
	deskID, err := handlers.ParseID(r.DeskID)
	if err != nil {
		return nil, err
	}

	from, err := timefmt.Parse(r.DateFrom, loc)
	if err != nil {
		return nil, fmt.Errorf("dateFrom: %w", err)
	}

	to, err := timefmt.Parse(r.DateTo, loc)
	if err != nil {
		return nil, fmt.Errorf("dateTo: %w", err)
	}

	return &createReservation.Request{
		UserID:   userID,
		DeskID:   deskID,
		DateFrom: from,
		DateTo:   to,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Reservations: models.FromDomainReservations(resp.Reservations),
	}
}
