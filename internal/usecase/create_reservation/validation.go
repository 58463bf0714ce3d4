package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/slots"
)

// validateRequest валидирует входные данные и приводит дату и время к формату слотов
func validateRequest(req *Request) (string, string, error) {
	if strings.TrimSpace(req.ProviderID) == "" {
		return "", "", fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientID) == "" {
		return "", "", fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid date format, expected MM/dd/yyyy", ErrInvalidInput)
	}

	hour, minute, err := slots.ParseClock(req.Time)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid time format, expected hh:mm AM/PM", ErrInvalidInput)
	}

	clock := time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC)
	return date.Format(domain.DateFormat), clock.Format(domain.TimeFormat), nil
}
