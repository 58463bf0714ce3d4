package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// validateRequest проверяет формат фильтра по дате и приводит его к формату слотов
func validateRequest(req *Request) (string, error) {
	date := strings.TrimSpace(req.Date)
	if date == "" {
		return "", nil
	}

	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return "", fmt.Errorf("%w: invalid date format, expected MM/dd/yyyy", ErrInvalidInput)
	}

	return parsed.Format(domain.DateFormat), nil
}

// matchShift проверяет, что смена проходит фильтр по провайдеру
func matchShift(shift domain.Shift, providerID string) bool {
	return providerID == "" || shift.ProviderID == providerID
}
