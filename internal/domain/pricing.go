package domain

import "time"

// PricingConfig add-on unit prices and payment-method discounts for one event type, cents
type PricingConfig struct {
	EventType      EventType
	PhotoBookPrice int64
	ExtraTimePrice int64
	ByobBarPrice   int64
	RehearsalPrice int64
	ACHDiscount    int64 // applies to ach and echeck
	AffirmDiscount int64
	UpdatedAt      time.Time
}

// DefaultPricingConfig compiled-in prices used when no configuration row exists.
// An empty or unknown event type carries no discounts.
func DefaultPricingConfig(eventType EventType) *PricingConfig {
	cfg := &PricingConfig{
		EventType:      eventType,
		PhotoBookPrice: DefaultPhotoBookPrice,
		ExtraTimePrice: DefaultExtraTimePrice,
		ByobBarPrice:   DefaultByobBarPrice,
		RehearsalPrice: DefaultRehearsalPrice,
	}
	switch {
	case eventType.IsFull():
		cfg.ACHDiscount = DefaultACHDiscountFull
		cfg.AffirmDiscount = DefaultAffirmDiscountFull
	case eventType.IsSimplified():
		cfg.ACHDiscount = DefaultACHDiscountSimple
		cfg.AffirmDiscount = DefaultAffirmDiscountSimple
	}
	return cfg
}

// AddonSelections add-ons chosen in the wizard
type AddonSelections struct {
	PhotoBook         bool
	PhotoBookQuantity int
	ExtraTime         bool
	ByobBar           bool
	Rehearsal         bool
}

// PriceBreakdown result of pricing a set of selections
type PriceBreakdown struct {
	BasePrice   int64
	AddonsTotal int64
	Discount    int64
	TotalPrice  int64
	AmountPaid  int64
	BalanceDue  int64
}

// CalculateBasePrice base package price for the event type on the given weekday.
// An unknown event type gets the PriceUnknownEventType placeholder.
func CalculateBasePrice(eventType EventType, weekday time.Weekday) int64 {
	switch eventType.Group() {
	case GroupFull:
		if weekday == time.Saturday {
			return PriceFullSaturday
		}
		return PriceFullOther
	case GroupSimplified:
		if weekday == time.Friday {
			return PriceSimplifiedFriday
		}
		return PriceSimplifiedOther
	default:
		return PriceUnknownEventType
	}
}

// BasePriceForDate CalculateBasePrice for a YYYY-MM-DD date.
// Without a date the weekday-independent price of the group is used.
func BasePriceForDate(eventType EventType, date string) int64 {
	d, ok := ParseDate(date)
	if !ok {
		// Wednesday is neither Saturday nor Friday, so this yields the regular price
		return CalculateBasePrice(eventType, time.Wednesday)
	}
	return CalculateBasePrice(eventType, d.Weekday())
}

// AddonsTotal sum of the selected add-ons. Eligibility (Extra Time) is checked by callers.
func AddonsTotal(sel AddonSelections, prices *PricingConfig) int64 {
	if prices == nil {
		return 0
	}

	var total int64
	if sel.PhotoBook {
		qty := sel.PhotoBookQuantity
		if qty < MinPhotoBookQuantity {
			qty = MinPhotoBookQuantity
		}
		total += prices.PhotoBookPrice * int64(qty)
	}
	if sel.ExtraTime {
		total += prices.ExtraTimePrice
	}
	if sel.ByobBar {
		total += prices.ByobBarPrice
	}
	if sel.Rehearsal {
		total += prices.RehearsalPrice
	}
	return total
}

// PaymentDiscount discount for paying with method; only ach/echeck and affirm carry one
func PaymentDiscount(method PaymentMethod, prices *PricingConfig) int64 {
	if prices == nil {
		return 0
	}
	switch method {
	case PaymentACH, PaymentECheck:
		return prices.ACHDiscount
	case PaymentAffirm:
		return prices.AffirmDiscount
	default:
		return 0
	}
}

// TotalPrice base + add-ons - discount, never below zero
func TotalPrice(basePrice, addonsTotal, discount int64) int64 {
	total := basePrice + addonsTotal - discount
	if total < 0 {
		return 0
	}
	return total
}

// BalanceDue remaining amount; negative means the customer overpaid
func BalanceDue(totalPrice, amountPaid int64) int64 {
	return totalPrice - amountPaid
}

// Quote prices a full set of selections
func Quote(
	eventType EventType,
	date string,
	sel AddonSelections,
	method PaymentMethod,
	prices *PricingConfig,
	amountPaid int64,
) PriceBreakdown {
	base := BasePriceForDate(eventType, date)
	addons := AddonsTotal(sel, prices)
	discount := PaymentDiscount(method, prices)
	total := TotalPrice(base, addons, discount)

	return PriceBreakdown{
		BasePrice:   base,
		AddonsTotal: addons,
		Discount:    discount,
		TotalPrice:  total,
		AmountPaid:  amountPaid,
		BalanceDue:  BalanceDue(total, amountPaid),
	}
}
