package get_settings

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings := h.service.Settings()

	h.logger.Info("GET /settings - hold=%dm, step=%dm, policy=%s",
		settings.HoldPeriodMinutes, settings.SlotStepMinutes, settings.MatchPolicy)
	handlers.RespondJSON(w, http.StatusOK, settings)
}
