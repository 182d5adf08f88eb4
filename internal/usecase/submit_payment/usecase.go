package submit_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
	composerRepo "github.com/m04kA/wedding-composer/internal/infra/storage/composer"
	"github.com/m04kA/wedding-composer/internal/integrations/paymentgateway"
)

// UseCase use case отправки композера на оплату
type UseCase struct {
	composerRepo ComposerRepository
	pricingRepo  PricingRepository
	gateway      PaymentGateway
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	composerRepo ComposerRepository,
	pricingRepo PricingRepository,
	gateway PaymentGateway,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		composerRepo: composerRepo,
		pricingRepo:  pricingRepo,
		gateway:      gateway,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute фиксирует цену и дату композера и создает платёжную сессию.
// Проверка слота и смена статуса выполняются в одной сериализуемой транзакции;
// если шлюз не создал сессию, транзакция откатывается и композер остаётся pending.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitPayment: composer=%s", req.ComposerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Без шлюза оплату начать нельзя
	if !uc.gateway.Configured() {
		uc.logger.Error("SubmitPayment: payment gateway is not configured")
		return nil, ErrPaymentUnavailable
	}

	now := uc.timeProvider.Now()

	var result *domain.Composer
	var session *paymentgateway.CheckoutSession

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Получаем композер с блокировкой
		c, err := uc.composerRepo.GetByID(txCtx, req.ComposerID)
		if err != nil {
			if errors.Is(err, composerRepo.ErrComposerNotFound) {
				uc.logger.Warn("SubmitPayment: composer=%s not found", req.ComposerID)
				return ErrComposerNotFound
			}
			uc.logger.Error("SubmitPayment: failed to get composer=%s: %v", req.ComposerID, err)
			return fmt.Errorf("%w: failed to get composer: %v", ErrInternal, err)
		}

		if req.RequesterID != nil && c.UserID != nil && *c.UserID != *req.RequesterID {
			uc.logger.Warn("SubmitPayment: user=%d is not the owner of composer=%s", *req.RequesterID, c.ID)
			return ErrAccessDenied
		}

		// 4. Проверяем полноту выбора
		if err := validateComposer(c); err != nil {
			uc.logger.Warn("SubmitPayment: composer=%s is not ready: %v", c.ID, err)
			return err
		}

		date, slot := c.Date(), c.Slot()

		// 5. Слот не должен быть занят другим оплаченным композером
		taken, err := uc.composerRepo.IsSlotTaken(txCtx, date, slot, c.ID)
		if err != nil {
			uc.logger.Error("SubmitPayment: failed to check slot %s %s: %v", date, slot, err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("SubmitPayment: slot %s %s already taken", date, slot)
			uc.metrics.IncSlotConflict("submit")
			return ErrSlotTaken
		}

		// 6. Дата должна оставаться выбираемой (срок и день недели)
		index, err := uc.composerRepo.GetBookedIndex(txCtx, date, date)
		if err != nil {
			uc.logger.Error("SubmitPayment: failed to get booked slots for %s: %v", date, err)
			return fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
		}
		if !domain.IsDateSelectable(date, c.EventType, index, now) {
			uc.logger.Warn("SubmitPayment: date %s is not selectable for %s", date, c.EventType)
			return ErrDateNotSelectable
		}

		// 7. Фиксируем цену; повторная отправка использует уже зафиксированную
		patch := &domain.ComposerPatch{}
		if c.IsEditable() {
			prices, err := uc.pricingRepo.GetOrDefault(txCtx, c.EventType)
			if err != nil {
				uc.logger.Error("SubmitPayment: failed to load pricing: %v", err)
				return fmt.Errorf("%w: failed to load pricing: %v", ErrInternal, err)
			}
			c.Reprice(prices)
			*patch = domain.PriceFields(c)
		}

		// 8. Создаем платёжную сессию на остаток
		session, err = uc.gateway.CreateCheckoutSession(txCtx, c.ID, c.BalanceDue())
		if err != nil {
			if errors.Is(err, paymentgateway.ErrNotConfigured) {
				return ErrPaymentUnavailable
			}
			uc.logger.Error("SubmitPayment: gateway failed for composer=%s: %v", c.ID, err)
			return fmt.Errorf("%w: %v", ErrPaymentFailed, err)
		}

		status := domain.PaymentStatusInitiated
		patch.PaymentStatus = &status
		patch.PaymentSessionID = &session.ID
		patch.PaymentInitiatedAt = &now

		if err := uc.composerRepo.Update(txCtx, c.ID, patch); err != nil {
			uc.logger.Error("SubmitPayment: failed to update composer=%s: %v", c.ID, err)
			return fmt.Errorf("%w: failed to update composer: %v", ErrInternal, err)
		}

		patch.Apply(c)
		result = c
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncPaymentSession(string(result.EventType))
	uc.logger.Info("SubmitPayment: composer=%s session=%s total=%d", result.ID, session.ID, result.TotalPrice)

	return &Response{
		ComposerID:    result.ID,
		PaymentStatus: string(result.PaymentStatus),
		SessionID:     session.ID,
		CheckoutURL:   session.URL,
		TotalPrice:    result.TotalPrice,
		BalanceDue:    result.BalanceDue(),
	}, nil
}
