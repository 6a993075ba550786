package reservations

import (
	"context"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	DeleteByID(ctx context.Context, userID, id string) error
	DeleteByIDs(ctx context.Context, userID string, ids []string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// DeskRepository интерфейс репозитория столов (нужен для имён в сгруппированном виде)
type DeskRepository interface {
	List(ctx context.Context) ([]domain.Desk, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики отмен
type Metrics interface {
	ObserveCancelled(mode string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
