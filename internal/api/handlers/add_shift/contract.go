package add_shift

import (
	"context"

	addShift "github.com/m04kA/SMC-ReservationEngine/internal/usecase/add_shift"
)

type AddShiftUseCase interface {
	AddShift(ctx context.Context, req *addShift.Request) (*addShift.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
