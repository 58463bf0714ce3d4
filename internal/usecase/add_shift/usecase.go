package add_shift

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// UseCase use case добавления смены провайдера
type UseCase struct {
	shiftRepo ShiftRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(shiftRepo ShiftRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		shiftRepo: shiftRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute добавляет смену, если такой же ещё нет
// Дубликат не считается ошибкой: возвращается OutcomeDuplicate без записи в хранилище
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddShift: provider=%s, date=%s, start=%s, end=%s",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddShift: validation failed: %v", err)
		return nil, err
	}

	shift := domain.Shift{
		ProviderID: req.ProviderID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		shifts := uc.shiftRepo.Shifts()

		if domain.ContainsShift(shifts, shift) {
			uc.logger.Info("AddShift: shift already exists for provider=%s on %s", shift.ProviderID, shift)
			result = &Response{
				Outcome: OutcomeDuplicate,
				Shift:   shift,
				Message: domain.MsgShiftAlreadyAdded,
			}
			return nil
		}

		if err := uc.shiftRepo.SaveShifts(txCtx, append(shifts, shift)); err != nil {
			uc.logger.Error("AddShift: failed to save shifts: %v", err)
			return fmt.Errorf("%w: failed to save shifts: %w", ErrInternal, err)
		}

		result = &Response{
			Outcome: OutcomeAdded,
			Shift:   shift,
			Message: fmt.Sprintf(domain.MsgShiftAdded, shift.Date.Format(domain.DateFormat), shift.StartTime, shift.EndTime),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome == OutcomeAdded {
		uc.logger.Info("AddShift: successfully added shift for provider=%s: %s", shift.ProviderID, shift)
	}

	return result, nil
}
