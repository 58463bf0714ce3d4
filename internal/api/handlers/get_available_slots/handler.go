package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ReservationEngine/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается MM/dd/yyyy"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: providerId (optional), date (optional, MM/dd/yyyy)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	providerID := query.Get("providerId")
	date := query.Get("date")

	result, err := h.useCase.AvailableSlots(r.Context(), ToUseCaseRequest(providerID, date))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to get slots: provider_id=%s, date=%s, error=%v", providerID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: provider_id=%s, date=%s, slots_count=%d",
		providerID, date, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
