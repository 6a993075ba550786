package get_user_reservations

import (
	"github.com/m04kA/SMC-DeskService/internal/domain"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations/models"
)

// ReservationListResponse HTTP response model
type ReservationListResponse struct {
	Reservations []models.ReservationResponse `json:"reservations"`
}

// FromServiceResponse конвертирует бронирования в HTTP response
func FromServiceResponse(reservations []domain.Reservation) *ReservationListResponse {
	return &ReservationListResponse{Reservations: models.FromDomainReservations(reservations)}
}
