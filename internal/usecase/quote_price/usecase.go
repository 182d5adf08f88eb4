package quote_price

import (
	"context"
	"fmt"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// UseCase use case расчёта цены без сохранения композера
type UseCase struct {
	pricingRepo PricingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricingRepo PricingRepository, logger Logger) *UseCase {
	return &UseCase{
		pricingRepo: pricingRepo,
		logger:      logger,
	}
}

// Execute считает цену. Неполный выбор даёт нейтральный результат:
// без даты берётся будничный тариф, без способа оплаты скидки нет.
// Extra Time вне субботнего вечера в цену не входит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: event=%q, date=%q, slot=%q, method=%q", req.EventType, req.Date, req.TimeSlot, req.PaymentMethod)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	eventType := domain.EventType(req.EventType)

	prices, err := uc.pricingRepo.GetOrDefault(ctx, eventType)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to load pricing for event=%q: %v", eventType, err)
		return nil, fmt.Errorf("%w: failed to load pricing: %v", ErrInternal, err)
	}

	eligible := domain.IsExtraTimeEligible(eventType, req.Date, req.TimeSlot)
	sel := domain.AddonSelections{
		PhotoBook:         req.PhotoBook,
		PhotoBookQuantity: req.PhotoBookQuantity,
		ExtraTime:         req.ExtraTime && eligible,
		ByobBar:           req.ByobBar,
		Rehearsal:         req.Rehearsal,
	}

	q := domain.Quote(eventType, req.Date, sel, domain.PaymentMethod(req.PaymentMethod), prices, req.AmountPaid)

	return &Response{
		BasePrice:         q.BasePrice,
		AddonsTotal:       q.AddonsTotal,
		Discount:          q.Discount,
		TotalPrice:        q.TotalPrice,
		AmountPaid:        q.AmountPaid,
		BalanceDue:        q.BalanceDue,
		ExtraTimeEligible: eligible,
	}, nil
}
