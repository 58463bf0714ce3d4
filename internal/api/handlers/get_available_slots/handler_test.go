package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ReservationEngine/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) AvailableSlots(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func TestHandle(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Groups: []domain.DateGroup{{
			Date: "05/10/2030",
			Slots: []domain.TimeSlot{
				{Date: "05/10/2030", Time: "09:00 AM", ProviderID: "p1"},
				{Date: "05/10/2030", Time: "09:15 AM", ProviderID: "p1"},
			},
		}},
		Total: 2,
	}}

	target := "/api/v1/slots?providerId=p1&date=" + url.QueryEscape("05/10/2030")
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "p1", uc.got.ProviderID)
	assert.Equal(t, "05/10/2030", uc.got.Date)

	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Dates, 1)
	assert.Equal(t, []SlotResponse{
		{Date: "05/10/2030", Time: "09:00 AM", ProviderID: "p1"},
		{Date: "05/10/2030", Time: "09:15 AM", ProviderID: "p1"},
	}, body.Dates[0].Slots)
}

func TestHandle_EmptyResultIsArray(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{Groups: []domain.DateGroup{}}}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dates":[],"total":0}`, rec.Body.String())
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &stubUseCase{err: fmt.Errorf("%w: invalid date format", getAvailableSlots.ErrInvalidInput)}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=tomorrow", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
