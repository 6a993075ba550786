package desks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	CreateMany(ctx context.Context, names []string) ([]domain.Desk, error)
	List(ctx context.Context) ([]domain.Desk, error)
	UpdateName(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListEndingAfter(ctx context.Context, since time.Time) ([]domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
