package get_desk_slots

import (
	"context"

	getDeskSlots "github.com/m04kA/SMC-DeskService/internal/usecase/get_desk_slots"
)

type GetDeskSlotsUseCase interface {
	Execute(ctx context.Context, req *getDeskSlots.Request) (*getDeskSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
