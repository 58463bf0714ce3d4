package add_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
	addShift "github.com/m04kA/SMC-ReservationEngine/internal/usecase/add_shift"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается MM/dd/yyyy"
	msgInvalidInput       = "не заполнены обязательные поля смены"
)

type Handler struct {
	useCase AddShiftUseCase
	logger  Logger
}

func NewHandler(useCase AddShiftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shifts
// 201 смена добавлена, 200 такая смена уже есть
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /shifts - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.AddShift(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, addShift.ErrInvalidInput):
			h.logger.Warn("POST /shifts - Invalid input: provider_id=%s, error=%v", req.ProviderID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /shifts - Failed to add shift: provider_id=%s, error=%v", req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.Outcome == addShift.OutcomeDuplicate {
		status = http.StatusOK
	}

	h.logger.Info("POST /shifts - %s: provider_id=%s", result.Message, req.ProviderID)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
