package session

import (
	"context"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Gateway долговременное хранилище смен и бронирований
// Save* полностью перезаписывает коллекцию
type Gateway interface {
	LoadSchedules(ctx context.Context) ([]domain.Shift, error)
	SaveSchedules(ctx context.Context, shifts []domain.Shift) error
	LoadReservations(ctx context.Context) ([]domain.Reservation, error)
	SaveReservations(ctx context.Context, reservations []domain.Reservation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
