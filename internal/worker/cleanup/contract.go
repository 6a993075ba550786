package cleanup

import (
	"context"
	"time"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Metrics счётчик удалённых броней
type Metrics interface {
	ObserveCleaned(count int)
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
