package confirm_reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// UseCase use case подтверждения бронирования с проверкой периода удержания
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	holdPeriod      time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// holdPeriod <= 0 заменяется на domain.HoldPeriod
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	holdPeriod time.Duration,
	logger Logger,
) *UseCase {
	if holdPeriod <= 0 {
		holdPeriod = domain.HoldPeriod
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		holdPeriod:      holdPeriod,
		logger:          logger,
	}
}

// Execute подтверждает первое бронирование, совпадающее по дате, времени, провайдеру и клиенту
//
// Если с момента создания прошло holdPeriod минут и больше, запись удаляется (OutcomeExpired),
// иначе помечается подтверждённой (OutcomeConfirmed). В обоих случаях список сохраняется целиком.
// Не найденная запись: OutcomeNotFound без записи и без ошибки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmReservation: client=%s, provider=%s, date=%s, time=%s",
		req.ClientID, req.ProviderID, req.Date, req.Time)

	date, slotTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ConfirmReservation: validation failed: %v", err)
		return nil, err
	}

	var resp *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservations := uc.reservationRepo.Reservations()

		index := -1
		for i := range reservations {
			if reservations[i].Matches(date, slotTime, req.ProviderID, req.ClientID) {
				index = i
				break
			}
		}

		if index < 0 {
			resp = &Response{Outcome: OutcomeNotFound}
			return nil
		}

		reservation := reservations[index]
		now := uc.timeProvider.Now()

		if reservation.HoldExpired(now, uc.holdPeriod) {
			reservations = append(reservations[:index], reservations[index+1:]...)
			resp = &Response{Outcome: OutcomeExpired, Reservation: &reservation, Message: MsgExpired}
		} else {
			reservations[index].Confirmed = true
			confirmed := reservations[index]
			resp = &Response{Outcome: OutcomeConfirmed, Reservation: &confirmed, Message: MsgConfirmed}
		}

		if err := uc.reservationRepo.SaveReservations(txCtx, reservations); err != nil {
			uc.logger.Error("ConfirmReservation: failed to save reservations: %v", err)
			return fmt.Errorf("%w: failed to save reservations: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch resp.Outcome {
	case OutcomeNotFound:
		uc.logger.Info("ConfirmReservation: no reservation %s %s with provider=%s for client=%s",
			date, slotTime, req.ProviderID, req.ClientID)
	case OutcomeExpired:
		uc.logger.Warn("ConfirmReservation: reservation created at %v expired, removed",
			resp.Reservation.CreationTimestamp)
	default:
		uc.logger.Info("ConfirmReservation: reservation %s %s confirmed", date, slotTime)
	}

	return resp, nil
}
