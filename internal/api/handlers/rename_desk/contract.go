package rename_desk

import "context"

type DeskService interface {
	Rename(ctx context.Context, id, name string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
