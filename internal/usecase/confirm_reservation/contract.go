package confirm_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// ReservationRepository снимок бронирований сессии
type ReservationRepository interface {
	Reservations() []domain.Reservation
	SaveReservations(ctx context.Context, reservations []domain.Reservation) error
}

// TransactionManager интерфейс для последовательного выполнения изменений
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
