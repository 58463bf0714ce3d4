package confirm_reservation

import (
	"context"

	confirmReservation "github.com/m04kA/SMC-ReservationEngine/internal/usecase/confirm_reservation"
)

type ConfirmReservationUseCase interface {
	ConfirmReservation(ctx context.Context, req *confirmReservation.Request) (*confirmReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
