package create_reservation

import "github.com/m04kA/SMC-ReservationEngine/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	Date       string // "MM/dd/yyyy"
	Time       string // "hh:mm AM/PM"
	ProviderID string // ID провайдера
	ClientID   string // ID клиента (caller identity)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation domain.Reservation
}
