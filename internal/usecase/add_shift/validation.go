package add_shift

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ProviderID) == "" {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.StartTime) == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.EndTime) == "" {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	return nil
}
