package confirm_reservation

import "github.com/m04kA/SMC-ReservationEngine/internal/domain"

// Outcome результат подтверждения
type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeExpired   Outcome = "expired"
	OutcomeNotFound  Outcome = "not_found"
)

// Status messages shown to the client
const (
	MsgConfirmed = "Confirmed reservation"
	MsgExpired   = "Reservation expired. Please resume booking."
)

// Request модель запроса на подтверждение бронирования
type Request struct {
	Date       string // "MM/dd/yyyy"
	Time       string // "hh:mm AM/PM"
	ProviderID string
	ClientID   string
}

// Response результат подтверждения
// Reservation заполнено для OutcomeConfirmed и OutcomeExpired (удалённая запись)
type Response struct {
	Outcome     Outcome
	Reservation *domain.Reservation
	Message     string
}
