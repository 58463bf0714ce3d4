package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationEngine/internal/session"
	addShift "github.com/m04kA/SMC-ReservationEngine/internal/usecase/add_shift"
	confirmReservation "github.com/m04kA/SMC-ReservationEngine/internal/usecase/confirm_reservation"
	createReservation "github.com/m04kA/SMC-ReservationEngine/internal/usecase/create_reservation"
	getAvailableSlots "github.com/m04kA/SMC-ReservationEngine/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

// Engine движок одной сессии: владеет снимком смен и бронирований
// и выполняет операции от имени клиента установки
type Engine struct {
	session  *session.Session
	callerID string
	recorder Recorder
	logger   Logger

	addShift           *addShift.UseCase
	availableSlots     *getAvailableSlots.UseCase
	createReservation  *createReservation.UseCase
	confirmReservation *confirmReservation.UseCase
	listings           *reservations.Service
}

// New загружает снимок из gateway и собирает движок
func New(ctx context.Context, gateway session.Gateway, callerID string, opts ...Option) (*Engine, error) {
	o := options{
		logger:     logger.NewNop(),
		recorder:   nopRecorder{},
		policy:     domain.MatchConfirmedOnly,
		holdPeriod: domain.HoldPeriod,
	}
	for _, opt := range opts {
		opt(&o)
	}

	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return nil, ErrNoCaller
	}
	if !o.policy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, o.policy)
	}
	if o.holdPeriod <= 0 {
		o.holdPeriod = domain.HoldPeriod
	}

	s := session.New(gateway, o.logger)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}

	o.logger.Info("Engine: caller=%s, policy=%s, hold=%v", callerID, o.policy, o.holdPeriod)

	return &Engine{
		session:  s,
		callerID: callerID,
		recorder: o.recorder,
		logger:   o.logger,

		addShift:           addShift.NewUseCase(s, s, o.logger),
		availableSlots:     getAvailableSlots.NewUseCase(s, o.policy, o.logger),
		createReservation:  createReservation.NewUseCase(s, s, o.logger),
		confirmReservation: confirmReservation.NewUseCase(s, s, o.holdPeriod, o.logger),
		listings:           reservations.NewService(s, o.holdPeriod, o.policy, o.logger),
	}, nil
}

// CallerID ID клиента установки
func (e *Engine) CallerID() string {
	return e.callerID
}

// AddShift добавляет смену провайдера
func (e *Engine) AddShift(ctx context.Context, req *addShift.Request) (*addShift.Response, error) {
	resp, err := e.addShift.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	e.recorder.ShiftAdded(string(resp.Outcome))
	return resp, nil
}

// AvailableSlots возвращает бронируемые слоты, сгруппированные по дате
func (e *Engine) AvailableSlots(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	req.ClientID = e.callerID
	return e.availableSlots.Execute(ctx, req)
}

// CreateReservation бронирует слот на клиента установки
func (e *Engine) CreateReservation(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	req.ClientID = e.callerID
	resp, err := e.createReservation.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	e.recorder.ReservationCreated()
	return resp, nil
}

// ConfirmReservation подтверждает бронирование клиента установки
func (e *Engine) ConfirmReservation(ctx context.Context, req *confirmReservation.Request) (*confirmReservation.Response, error) {
	req.ClientID = e.callerID
	resp, err := e.confirmReservation.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	e.recorder.ReservationConfirmed(string(resp.Outcome))
	return resp, nil
}

// ListReservations бронирования клиента установки
func (e *Engine) ListReservations(ctx context.Context, req *models.GetClientReservationsRequest) (*models.ReservationListResponse, error) {
	req.ClientID = e.callerID
	return e.listings.ListClientReservations(ctx, req)
}

// ListShifts смены провайдера, пустой providerID возвращает все
func (e *Engine) ListShifts(ctx context.Context, providerID string) (*models.ShiftListResponse, error) {
	return e.listings.ListProviderShifts(ctx, providerID)
}

// Settings настройки движка
func (e *Engine) Settings() *models.SettingsResponse {
	return e.listings.Settings()
}

// Snapshot копии текущих смен и бронирований
func (e *Engine) Snapshot() ([]domain.Shift, []domain.Reservation) {
	return e.session.Snapshot()
}

// Reload перечитывает снимок из хранилища
func (e *Engine) Reload(ctx context.Context) error {
	start := time.Now()
	if err := e.session.Load(ctx); err != nil {
		return err
	}
	e.logger.Info("Engine: snapshot reloaded in %v", time.Since(start))
	return nil
}
