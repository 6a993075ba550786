package create_reservation

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
	Create(ctx context.Context, deskID, userID string, slot domain.TimeSlot) (*domain.Reservation, error)
	// GetConflictsForUpdate получает пересекающиеся бронирования стола или пользователя с блокировкой (FOR UPDATE)
	GetConflictsForUpdate(ctx context.Context, deskID, userID string, slot domain.TimeSlot) ([]domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	ObserveCreated(source string, count int)
	ObserveConflict(reason string)
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
