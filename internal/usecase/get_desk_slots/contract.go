package get_desk_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Desk, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// ListByDeskBetween получает бронирования стола, пересекающиеся с [from, to)
	ListByDeskBetween(ctx context.Context, deskID string, from, to time.Time) ([]domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
