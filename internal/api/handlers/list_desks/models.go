package list_desks

import (
	"github.com/m04kA/SMC-DeskService/internal/domain"
	"github.com/m04kA/SMC-DeskService/internal/service/desks/models"
)

// DeskListResponse HTTP response model
type DeskListResponse struct {
	Desks []models.DeskResponse `json:"desks"`
}

// FromServiceResponse конвертирует столы в HTTP response
func FromServiceResponse(desks []domain.Desk) *DeskListResponse {
	return &DeskListResponse{Desks: models.FromDomainDesks(desks)}
}
