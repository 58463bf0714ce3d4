package confirm_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
	confirmReservation "github.com/m04kA/SMC-ReservationEngine/internal/usecase/confirm_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не заполнены дата, время или провайдер"
)

type Handler struct {
	useCase ConfirmReservationUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/confirm
// 200 подтверждено, 410 период удержания истёк (запись удалена), 204 бронирование не найдено
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.ConfirmReservation(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, confirmReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/confirm - Failed to confirm: date=%s, time=%s, provider_id=%s, error=%v",
				req.Date, req.Time, req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	switch result.Outcome {
	case confirmReservation.OutcomeNotFound:
		h.logger.Info("POST /reservations/confirm - Reservation not found: date=%s, time=%s, provider_id=%s",
			req.Date, req.Time, req.ProviderID)
		handlers.RespondNoContent(w)

	case confirmReservation.OutcomeExpired:
		h.logger.Warn("POST /reservations/confirm - Reservation expired: date=%s, time=%s, provider_id=%s",
			req.Date, req.Time, req.ProviderID)
		handlers.RespondJSON(w, http.StatusGone, FromUseCaseResponse(result))

	default:
		h.logger.Info("POST /reservations/confirm - Reservation confirmed: date=%s, time=%s, provider_id=%s",
			req.Date, req.Time, req.ProviderID)
		handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
	}
}
