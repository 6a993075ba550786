package deskclient

import (
	"context"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// DeskSource источник актуального списка столов
type DeskSource interface {
	ListDesks(ctx context.Context) ([]domain.Desk, error)
}

// Booker бронирует и отменяет отдельные интервалы
type Booker interface {
	CreateReservation(ctx context.Context, req domain.BookingRequest) ([]domain.Reservation, error)
	CancelReservation(ctx context.Context, reservationID string) error
}

// Refresher обновляет локальное состояние после успешной операции
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
