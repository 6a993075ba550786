package get_grouped_reservations

import (
	"github.com/m04kA/SMC-DeskService/internal/domain"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations/models"
)

// GroupedReservationsResponse HTTP response model
type GroupedReservationsResponse struct {
	Groups []models.GroupedReservationResponse `json:"groups"`
}

// FromServiceResponse конвертирует группы в HTTP response
func FromServiceResponse(groups []domain.GroupedReservation) *GroupedReservationsResponse {
	return &GroupedReservationsResponse{Groups: models.FromDomainGrouped(groups)}
}
