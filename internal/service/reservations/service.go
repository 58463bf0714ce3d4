package reservations

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations/models"
)

// Service сервис чтения бронирований и смен из снимка сессии
type Service struct {
	snapshot   SnapshotReader
	holdPeriod time.Duration
	policy     domain.MatchPolicy
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	snapshot SnapshotReader,
	holdPeriod time.Duration,
	policy domain.MatchPolicy,
	logger Logger,
) *Service {
	return &Service{
		snapshot:   snapshot,
		holdPeriod: holdPeriod,
		policy:     policy,
		logger:     logger,
	}
}

// ListClientReservations получает бронирования клиента в порядке хранения
// Опционально фильтрует по провайдеру и только подтверждённым
func (s *Service) ListClientReservations(ctx context.Context, req *models.GetClientReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := fmt.Sprintf("ListClientReservations: fetching reservations for client=%s", req.ClientID)
	if req.ProviderID != nil {
		logMsg += fmt.Sprintf(", provider=%s", *req.ProviderID)
	}
	if req.ConfirmedOnly {
		logMsg += ", confirmedOnly=true"
	}
	s.logger.Info(logMsg)

	if strings.TrimSpace(req.ClientID) == "" {
		s.logger.Warn("ListClientReservations: empty clientID")
		return nil, fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	filter := req.ToDomainFilter()

	result := make([]domain.Reservation, 0)
	for _, reservation := range s.snapshot.Reservations() {
		if reservation.ClientID != filter.ClientID {
			continue
		}
		if filter.ProviderID != nil && reservation.ProviderID != *filter.ProviderID {
			continue
		}
		if filter.ConfirmedOnly && !reservation.Confirmed {
			continue
		}
		result = append(result, reservation)
	}

	s.logger.Info("ListClientReservations: successfully fetched %d reservations for client=%s", len(result), req.ClientID)
	return models.FromDomainReservationList(result), nil
}

// ListProviderShifts получает смены провайдера, упорядоченные по дате
// Пустой providerID возвращает все смены
func (s *Service) ListProviderShifts(ctx context.Context, providerID string) (*models.ShiftListResponse, error) {
	s.logger.Info("ListProviderShifts: fetching shifts for provider=%q", providerID)

	providerID = strings.TrimSpace(providerID)

	result := make([]domain.Shift, 0)
	for _, shift := range s.snapshot.Shifts() {
		if providerID == "" || shift.ProviderID == providerID {
			result = append(result, shift)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	s.logger.Info("ListProviderShifts: successfully fetched %d shifts", len(result))
	return models.FromDomainShiftList(result), nil
}

// Settings возвращает настройки движка
func (s *Service) Settings() *models.SettingsResponse {
	return &models.SettingsResponse{
		SlotStepMinutes:   int(domain.SlotStep / time.Minute),
		HoldPeriodMinutes: int(s.holdPeriod / time.Minute),
		MatchPolicy:       string(s.policy),
		DateFormat:        "MM/dd/yyyy",
		TimeFormat:        "hh:mm AM/PM",
	}
}
