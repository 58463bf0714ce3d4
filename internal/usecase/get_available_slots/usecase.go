package get_available_slots

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/slots"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	snapshot     SnapshotReader
	policy       domain.MatchPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// Неизвестная политика заменяется на domain.MatchConfirmedOnly
func NewUseCase(snapshot SnapshotReader, policy domain.MatchPolicy, logger Logger) *UseCase {
	if !policy.Valid() {
		policy = domain.MatchConfirmedOnly
	}
	return &UseCase{
		snapshot:     snapshot,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Смены с неразбираемым временем не дают слотов и только логируются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: client=%s, provider=%s, date=%s", req.ClientID, req.ProviderID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}
	providerID := strings.TrimSpace(req.ProviderID)

	// 2. Берём согласованный снимок смен и бронирований
	shifts, reservations := uc.snapshot.Snapshot()

	// 3. Отбираем смены
	selected := make([]domain.Shift, 0, len(shifts))
	for _, shift := range shifts {
		if !matchShift(shift, providerID) {
			continue
		}
		if _, _, err := slots.Bounds(shift); err != nil {
			uc.logger.Warn("GetAvailableSlots: skip shift %s of provider=%s: %v", shift.String(), shift.ProviderID, err)
			continue
		}
		selected = append(selected, shift)
	}

	// 4. Генерируем, фильтруем и группируем
	groups := slots.Available(selected, reservations, uc.timeProvider.Now(), uc.policy)

	if date != "" {
		filtered := make([]domain.DateGroup, 0, 1)
		for _, group := range groups {
			if group.Date == date {
				filtered = append(filtered, group)
			}
		}
		groups = filtered
	}

	total := 0
	for _, group := range groups {
		total += len(group.Slots)
	}

	uc.logger.Info("GetAvailableSlots: %d slots in %d dates from %d shifts", total, len(groups), len(selected))

	return &Response{Groups: groups, Total: total}, nil
}
