package load_desks

import (
	"context"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

type DeskService interface {
	Load(ctx context.Context, names []string) ([]domain.Desk, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
