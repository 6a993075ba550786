package cancel_all_reservations

import "context"

type ReservationService interface {
	CancelAll(ctx context.Context, userID string) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
