package get_settings

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

type stubService struct{}

func (stubService) Settings() *models.SettingsResponse {
	return &models.SettingsResponse{
		SlotStepMinutes:   15,
		HoldPeriodMinutes: 30,
		MatchPolicy:       "confirmed_only",
		DateFormat:        "MM/dd/yyyy",
		TimeFormat:        "hh:mm AM/PM",
	}
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(stubService{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"slotStepMinutes": 15,
		"holdPeriodMinutes": 30,
		"matchPolicy": "confirmed_only",
		"dateFormat": "MM/dd/yyyy",
		"timeFormat": "hh:mm AM/PM"
	}`, rec.Body.String())
}
