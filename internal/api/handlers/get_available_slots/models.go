package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-ReservationEngine/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	ProviderID string `json:"providerId"`
}

// DateGroupResponse слоты одной даты
type DateGroupResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Dates []DateGroupResponse `json:"dates"`
	Total int                 `json:"total"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(providerID, date string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ProviderID: providerID,
		Date:       date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		Dates: make([]DateGroupResponse, 0, len(resp.Groups)),
		Total: resp.Total,
	}

	for _, group := range resp.Groups {
		slots := make([]SlotResponse, 0, len(group.Slots))
		for _, slot := range group.Slots {
			slots = append(slots, SlotResponse{
				Date:       slot.Date,
				Time:       slot.Time,
				ProviderID: slot.ProviderID,
			})
		}
		result.Dates = append(result.Dates, DateGroupResponse{Date: group.Date, Slots: slots})
	}

	return result
}
