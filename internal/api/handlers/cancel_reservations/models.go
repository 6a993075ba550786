package cancel_reservations

import (
	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations/models"
)

// ToServiceRequest проверяет ID бронирований и приводит их к канонической форме
func ToServiceRequest(req *models.CancelManyRequest) ([]string, error) {
	ids := make([]string, 0, len(req.ReservationIDs))
	for _, raw := range req.ReservationIDs {
		id, err := handlers.ParseID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
