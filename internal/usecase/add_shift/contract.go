package add_shift

import (
	"context"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// ShiftRepository снимок смен сессии
type ShiftRepository interface {
	Shifts() []domain.Shift
	SaveShifts(ctx context.Context, shifts []domain.Shift) error
}

// TransactionManager интерфейс для последовательного выполнения изменений
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
