package reservations

import (
	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// SnapshotReader снимок смен и бронирований сессии
type SnapshotReader interface {
	Shifts() []domain.Shift
	Reservations() []domain.Reservation
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
