package cancel_reservations

import "context"

type ReservationService interface {
	CancelMany(ctx context.Context, userID string, ids []string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
