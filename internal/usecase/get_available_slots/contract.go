package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// SnapshotReader согласованный снимок смен и бронирований сессии
type SnapshotReader interface {
	Snapshot() ([]domain.Shift, []domain.Reservation)
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
