package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations/models"
)

const (
	msgInvalidConfirmedOnly = "некорректное значение confirmedOnly, ожидается true или false"
	msgInvalidInput         = "некорректный запрос"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: providerId (optional), confirmedOnly (optional bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.GetClientReservationsRequest{}

	if providerID := query.Get("providerId"); providerID != "" {
		req.ProviderID = &providerID
	}

	if raw := query.Get("confirmedOnly"); raw != "" {
		confirmedOnly, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid confirmedOnly=%q", raw)
			handlers.RespondBadRequest(w, msgInvalidConfirmedOnly)
			return
		}
		req.ConfirmedOnly = confirmedOnly
	}

	result, err := h.service.ListReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: count=%d", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
