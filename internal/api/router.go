package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
	addShiftHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/add_shift"
	confirmReservationHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/get_available_slots"
	getSettingsHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/get_settings"
	getUserReservationsHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/get_user_reservations"
	listShiftsHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/list_shifts"
	"github.com/m04kA/SMC-ReservationEngine/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationEngine/internal/engine"
	"github.com/m04kA/SMC-ReservationEngine/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsOptions метрики роутера, nil Collector отключает их
type MetricsOptions struct {
	Collector *metrics.Metrics
	Path      string
}

// NewRouter собирает HTTP API движка
func NewRouter(e *engine.Engine, m MetricsOptions, log Logger) *mux.Router {
	addShift := addShiftHandler.NewHandler(e, log)
	listShifts := listShiftsHandler.NewHandler(e, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(e, log)
	createReservation := createReservationHandler.NewHandler(e, log)
	confirmReservation := confirmReservationHandler.NewHandler(e, log)
	getUserReservations := getUserReservationsHandler.NewHandler(e, log)
	getSettings := getSettingsHandler.NewHandler(e, log)

	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	if m.Collector != nil {
		r.Use(middleware.MetricsMiddleware(m.Collector))
		r.Handle(m.Path, m.Collector.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	// без обработчика subrouter отдаёт 404 на неподходящий метод
	api.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log.Warn("%s %s - method not allowed", req.Method, req.URL.Path)
		handlers.RespondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// --- Смены ---
	api.HandleFunc("/shifts", addShift.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shifts", listShifts.Handle).Methods(http.MethodGet)

	// --- Слоты ---
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования клиента установки ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", getUserReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/confirm", confirmReservation.Handle).Methods(http.MethodPost)

	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	return r
}
