package get_settings

import (
	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations/models"
)

type SettingsService interface {
	Settings() *models.SettingsResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
