package add_shift

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Outcome результат добавления смены
type Outcome string

const (
	OutcomeAdded     Outcome = "added"
	OutcomeDuplicate Outcome = "duplicate"
)

// Request модель запроса на добавление смены
type Request struct {
	ProviderID string    // ID провайдера
	Date       time.Time // Дата смены
	StartTime  string    // Время начала, например "09:00 AM"
	EndTime    string    // Время окончания, например "05:00 PM"
}

// Response модель ответа
type Response struct {
	Outcome Outcome
	Shift   domain.Shift
	Message string // Статус для пользователя
}
