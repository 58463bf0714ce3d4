package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Request модели

// GetClientReservationsRequest запрос на получение бронирований клиента
type GetClientReservationsRequest struct {
	ClientID      string  `json:"clientId"`
	ProviderID    *string `json:"providerId,omitempty"` // Фильтр по провайдеру (опционально)
	ConfirmedOnly bool    `json:"confirmedOnly,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetClientReservationsRequest) ToDomainFilter() domain.ClientReservationsFilter {
	return domain.ClientReservationsFilter{
		ClientID:      r.ClientID,
		ProviderID:    r.ProviderID,
		ConfirmedOnly: r.ConfirmedOnly,
	}
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	Date              string    `json:"date"` // "05/10/2030"
	Time              string    `json:"time"` // "09:15 AM"
	ClientID          string    `json:"clientId"`
	ProviderID        string    `json:"providerId"`
	Confirmed         bool      `json:"confirmed"`
	State             string    `json:"state"`
	CreationTimestamp time.Time `json:"creationTimestamp"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// ShiftResponse ответ с данными смены
type ShiftResponse struct {
	ProviderID string `json:"providerId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// ShiftListResponse ответ со списком смен
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// SettingsResponse настройки движка
type SettingsResponse struct {
	SlotStepMinutes   int    `json:"slotStepMinutes"`
	HoldPeriodMinutes int    `json:"holdPeriodMinutes"`
	MatchPolicy       string `json:"matchPolicy"`
	DateFormat        string `json:"dateFormat"`
	TimeFormat        string `json:"timeFormat"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		Date:              r.Date,
		Time:              r.Time,
		ClientID:          r.ClientID,
		ProviderID:        r.ProviderID,
		Confirmed:         r.Confirmed,
		State:             string(r.State()),
		CreationTimestamp: r.CreationTimestamp,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for i := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(&reservations[i]))
	}

	return resp
}

// FromDomainShift конвертирует смену в DTO, дата в формате MM/dd/yyyy
func FromDomainShift(s domain.Shift) ShiftResponse {
	return ShiftResponse{
		ProviderID: s.ProviderID,
		Date:       s.Date.Format(domain.DateFormat),
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

// FromDomainShiftList конвертирует список смен в DTO
func FromDomainShiftList(shifts []domain.Shift) *ShiftListResponse {
	resp := &ShiftListResponse{
		Shifts: make([]ShiftResponse, 0, len(shifts)),
	}

	for _, shift := range shifts {
		resp.Shifts = append(resp.Shifts, FromDomainShift(shift))
	}

	return resp
}
