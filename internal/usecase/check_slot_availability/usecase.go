package check_slot_availability

import (
	"context"
	"fmt"
)

// UseCase use case для проверки, свободен ли слот
type UseCase struct {
	composerRepo ComposerRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(composerRepo ComposerRepository, logger Logger) *UseCase {
	return &UseCase{
		composerRepo: composerRepo,
		logger:       logger,
	}
}

// Execute слот недоступен только если его держит другой оплаченный композер.
// Черновики и начатые оплаты слот не занимают.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlotAvailability: date=%s, slot=%s, exclude=%q", req.Date, req.TimeSlot, req.ExcludeID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlotAvailability: validation failed: %v", err)
		return nil, err
	}

	taken, err := uc.composerRepo.IsSlotTaken(ctx, req.Date, req.TimeSlot, req.ExcludeID)
	if err != nil {
		uc.logger.Error("CheckSlotAvailability: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
	}

	return &Response{Available: !taken}, nil
}
