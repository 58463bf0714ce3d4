package add_shift

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations/models"
	addShift "github.com/m04kA/SMC-ReservationEngine/internal/usecase/add_shift"
)

// AddShiftRequest HTTP request model
type AddShiftRequest struct {
	ProviderID string `json:"providerId"`
	Date       string `json:"date"`      // "05/10/2030"
	StartTime  string `json:"startTime"` // "09:00 AM"
	EndTime    string `json:"endTime"`   // "05:00 PM"
}

// AddShiftResponse HTTP response model
type AddShiftResponse struct {
	Outcome string               `json:"outcome"`
	Message string               `json:"message"`
	Shift   models.ShiftResponse `json:"shift"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата разбирается в локальном времени
func (r *AddShiftRequest) ToUseCaseRequest() (*addShift.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	return &addShift.Request{
		ProviderID: r.ProviderID,
		Date:       date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addShift.Response) *AddShiftResponse {
	return &AddShiftResponse{
		Outcome: string(resp.Outcome),
		Message: resp.Message,
		Shift:   models.FromDomainShift(resp.Shift),
	}
}
