package add_shift

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	addShift "github.com/m04kA/SMC-ReservationEngine/internal/usecase/add_shift"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

type stubUseCase struct {
	got  *addShift.Request
	resp *addShift.Response
	err  error
}

func (s *stubUseCase) AddShift(ctx context.Context, req *addShift.Request) (*addShift.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/shifts", strings.NewReader(body)))
	return rec
}

const validBody = `{"providerId":"p1","date":"05/10/2030","startTime":"09:00 AM","endTime":"10:00 AM"}`

func TestHandle_StatusByOutcome(t *testing.T) {
	shift := domain.Shift{ProviderID: "p1", Date: time.Date(2030, time.May, 10, 0, 0, 0, 0, time.Local), StartTime: "09:00 AM", EndTime: "10:00 AM"}

	tests := []struct {
		name       string
		outcome    addShift.Outcome
		message    string
		wantStatus int
	}{
		{name: "added", outcome: addShift.OutcomeAdded, message: fmt.Sprintf(domain.MsgShiftAdded, "05/10/2030", "09:00 AM", "10:00 AM"), wantStatus: http.StatusCreated},
		{name: "duplicate", outcome: addShift.OutcomeDuplicate, message: domain.MsgShiftAlreadyAdded, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{resp: &addShift.Response{Outcome: tt.outcome, Shift: shift, Message: tt.message}}
			rec := serve(NewHandler(uc, logger.NewNop()), validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body AddShiftResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, string(tt.outcome), body.Outcome)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, "05/10/2030", body.Shift.Date)

			require.NotNil(t, uc.got)
			assert.Equal(t, "p1", uc.got.ProviderID)
			assert.Equal(t, 10, uc.got.Date.Day())
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed body", body: `{"providerId":`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"providerId":"p1","date":"2030-05-10","startTime":"09:00 AM","endTime":"10:00 AM"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: validBody, err: fmt.Errorf("%w: providerID is required", addShift.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "storage failure", body: validBody, err: fmt.Errorf("%w: disk", addShift.ErrInternal), wantStatus: http.StatusInternalServerError},
		{name: "unknown failure", body: validBody, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubUseCase{err: tt.err}, logger.NewNop()), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
