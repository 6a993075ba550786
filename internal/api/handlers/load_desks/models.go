package load_desks

import (
	"github.com/m04kA/SMC-DeskService/internal/domain"
	"github.com/m04kA/SMC-DeskService/internal/service/desks/models"
)

// LoadDesksResponse HTTP response model
type LoadDesksResponse struct {
	Desks []models.DeskResponse `json:"desks"`
}

// FromServiceResponse конвертирует созданные столы в HTTP response
func FromServiceResponse(desks []domain.Desk) *LoadDesksResponse {
	return &LoadDesksResponse{Desks: models.FromDomainDesks(desks)}
}
