package confirm_reservation

import (
	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations/models"
	confirmReservation "github.com/m04kA/SMC-ReservationEngine/internal/usecase/confirm_reservation"
)

// ConfirmReservationRequest HTTP request model
type ConfirmReservationRequest struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	ProviderID string `json:"providerId"`
}

// ConfirmReservationResponse HTTP response model
type ConfirmReservationResponse struct {
	Outcome     string                      `json:"outcome"`
	Message     string                      `json:"message"`
	Reservation *models.ReservationResponse `json:"reservation,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmReservationRequest) ToUseCaseRequest() *confirmReservation.Request {
	return &confirmReservation.Request{
		Date:       r.Date,
		Time:       r.Time,
		ProviderID: r.ProviderID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmReservation.Response) *ConfirmReservationResponse {
	return &ConfirmReservationResponse{
		Outcome:     string(resp.Outcome),
		Message:     resp.Message,
		Reservation: models.FromDomainReservation(resp.Reservation),
	}
}
