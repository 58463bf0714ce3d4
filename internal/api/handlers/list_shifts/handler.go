package list_shifts

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
)

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shifts
// Query params: providerId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := r.URL.Query().Get("providerId")

	result, err := h.service.ListShifts(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /shifts - Failed to list shifts: provider_id=%s, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shifts - Shifts retrieved successfully: provider_id=%s, count=%d", providerID, len(result.Shifts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
