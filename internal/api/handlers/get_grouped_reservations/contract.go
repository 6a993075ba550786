package get_grouped_reservations

import (
	"context"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

type ReservationService interface {
	ListGrouped(ctx context.Context, userID string) ([]domain.GroupedReservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
