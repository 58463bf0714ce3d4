package list_shifts

import (
	"context"

	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations/models"
)

type ShiftService interface {
	ListShifts(ctx context.Context, providerID string) (*models.ShiftListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
