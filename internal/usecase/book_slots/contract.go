package book_slots

import (
	"context"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// Reserver атомарно бронирует набор интервалов одного стола
type Reserver interface {
	ReserveSlots(ctx context.Context, userID, deskID string, slots []domain.TimeSlot, source string) ([]domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
