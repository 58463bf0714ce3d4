package create_reservation

import (
	"context"

	createReservation "github.com/m04kA/SMC-ReservationEngine/internal/usecase/create_reservation"
)

type CreateReservationUseCase interface {
	CreateReservation(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
