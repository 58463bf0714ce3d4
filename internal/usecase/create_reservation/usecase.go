package create_reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// UseCase use case создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создаёт неподтверждённое бронирование клиента на слот и сохраняет весь список
// Проверки на дубликаты здесь нет: занятые слоты не попадают в выдачу доступных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%s, provider=%s, date=%s, time=%s",
		req.ClientID, req.ProviderID, req.Date, req.Time)

	date, slotTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	reservation := domain.Reservation{
		Date:       date,
		Time:       slotTime,
		ClientID:   req.ClientID,
		ProviderID: req.ProviderID,
		Confirmed:  false,
		// Хранилище держит миллисекунды, обрезаем сразу, чтобы запись после перечитывания была равна
		CreationTimestamp: time.UnixMilli(now.UnixMilli()),
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservations := append(uc.reservationRepo.Reservations(), reservation)

		if err := uc.reservationRepo.SaveReservations(txCtx, reservations); err != nil {
			uc.logger.Error("CreateReservation: failed to save reservations: %v", err)
			return fmt.Errorf("%w: failed to save reservations: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: reserved slot %s %s with provider=%s for client=%s",
		reservation.Date, reservation.Time, reservation.ProviderID, reservation.ClientID)

	return &Response{Reservation: reservation}, nil
}
