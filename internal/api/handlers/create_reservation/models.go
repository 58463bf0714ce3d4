package create_reservation

import (
	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-ReservationEngine/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
// Клиент не передаётся: бронирование оформляется на клиента установки
type CreateReservationRequest struct {
	Date       string `json:"date"` // "05/10/2030"
	Time       string `json:"time"` // "09:15 AM"
	ProviderID string `json:"providerId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Date:       r.Date,
		Time:       r.Time,
		ProviderID: r.ProviderID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *models.ReservationResponse {
	return models.FromDomainReservation(&resp.Reservation)
}
