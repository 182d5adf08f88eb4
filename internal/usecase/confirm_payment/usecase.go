package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/wedding-composer/internal/domain"
	composerRepo "github.com/m04kA/wedding-composer/internal/infra/storage/composer"
)

// UseCase use case подтверждения оплаты по событию шлюза
type UseCase struct {
	composerRepo ComposerRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	composerRepo ComposerRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		composerRepo: composerRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переводит композер в completed и занимает его слот.
// Захват слота атомарен: строки блокируются FOR UPDATE в сериализуемой транзакции,
// а частичный уникальный индекс не даст двум оплаченным композерам один слот.
// Повторное событие для уже оплаченного композера ничего не меняет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: event=%s, session=%s, composer=%s, amount=%d",
		req.Type, req.SessionID, req.ReferenceID, req.AmountTotal)

	if !isPaidEvent(req) {
		uc.logger.Info("ConfirmPayment: ignoring event=%s status=%s", req.Type, req.Status)
		return &Response{ComposerID: req.ReferenceID, Ignored: true}, nil
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmPayment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Composer
	alreadyCompleted := false

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		c, err := uc.composerRepo.GetByID(txCtx, req.ReferenceID)
		if err != nil {
			if errors.Is(err, composerRepo.ErrComposerNotFound) {
				uc.logger.Warn("ConfirmPayment: composer=%s not found", req.ReferenceID)
				return ErrComposerNotFound
			}
			uc.logger.Error("ConfirmPayment: failed to get composer=%s: %v", req.ReferenceID, err)
			return fmt.Errorf("%w: failed to get composer: %v", ErrInternal, err)
		}

		if c.IsCompleted() {
			alreadyCompleted = true
			result = c
			return nil
		}

		if c.PaymentStatus != domain.PaymentStatusInitiated || !c.HasDateTime() {
			uc.logger.Warn("ConfirmPayment: composer=%s is %s", c.ID, c.PaymentStatus)
			return ErrNotInitiated
		}

		if c.PaymentSessionID != nil && *c.PaymentSessionID != req.SessionID {
			uc.logger.Warn("ConfirmPayment: composer=%s expects session=%s, got %s",
				c.ID, *c.PaymentSessionID, req.SessionID)
			return ErrSessionMismatch
		}

		taken, err := uc.composerRepo.IsSlotTaken(txCtx, c.Date(), c.Slot(), c.ID)
		if err != nil {
			uc.logger.Error("ConfirmPayment: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			return ErrSlotTaken
		}

		status := domain.PaymentStatusCompleted
		paid := c.AmountPaid + req.AmountTotal
		completedAt := uc.timeProvider.Now()
		patch := &domain.ComposerPatch{
			PaymentStatus: &status,
			AmountPaid:    &paid,
			CompletedAt:   &completedAt,
		}

		if err := uc.composerRepo.Update(txCtx, c.ID, patch); err != nil {
			if errors.Is(err, composerRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("ConfirmPayment: failed to update composer=%s: %v", c.ID, err)
			return fmt.Errorf("%w: failed to update composer: %v", ErrInternal, err)
		}

		patch.Apply(c)
		result = c
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Error("ConfirmPayment: composer=%s paid but slot is held by another booking", req.ReferenceID)
			uc.metrics.IncSlotConflict("confirm")
		}
		return nil, err
	}

	if alreadyCompleted {
		uc.logger.Info("ConfirmPayment: composer=%s already completed, event ignored", result.ID)
	} else {
		uc.metrics.IncPaymentCompleted(string(result.EventType))
		uc.logger.Info("ConfirmPayment: composer=%s completed, paid=%d", result.ID, result.AmountPaid)
	}

	return &Response{
		ComposerID:       result.ID,
		PaymentStatus:    string(result.PaymentStatus),
		AmountPaid:       result.AmountPaid,
		AlreadyCompleted: alreadyCompleted,
	}, nil
}
