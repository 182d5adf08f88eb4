package models

import "github.com/m04kA/wedding-composer/internal/domain"

// BasePrices базовые цены пакета по дням недели, центы
type BasePrices struct {
	Saturday int64 `json:"saturday,omitempty"`
	Friday   int64 `json:"friday,omitempty"`
	Other    int64 `json:"other"`
}

// PricingConfigResponse цены допов, скидки и базовые цены для типа события
type PricingConfigResponse struct {
	EventType      string     `json:"eventType"`
	BasePrices     BasePrices `json:"basePrices"`
	PhotoBookPrice int64      `json:"photoBookPrice"`
	ExtraTimePrice int64      `json:"extraTimePrice"`
	ByobBarPrice   int64      `json:"byobBarPrice"`
	RehearsalPrice int64      `json:"rehearsalPrice"`
	ACHDiscount    int64      `json:"achDiscount"`
	AffirmDiscount int64      `json:"affirmDiscount"`
}

// FromDomainPricingConfig конвертирует domain модель в DTO
func FromDomainPricingConfig(cfg *domain.PricingConfig) *PricingConfigResponse {
	if cfg == nil {
		return nil
	}

	resp := &PricingConfigResponse{
		EventType:      string(cfg.EventType),
		PhotoBookPrice: cfg.PhotoBookPrice,
		ExtraTimePrice: cfg.ExtraTimePrice,
		ByobBarPrice:   cfg.ByobBarPrice,
		RehearsalPrice: cfg.RehearsalPrice,
		ACHDiscount:    cfg.ACHDiscount,
		AffirmDiscount: cfg.AffirmDiscount,
	}

	if cfg.EventType.IsSimplified() {
		resp.BasePrices = BasePrices{Friday: domain.PriceSimplifiedFriday, Other: domain.PriceSimplifiedOther}
	} else {
		resp.BasePrices = BasePrices{Saturday: domain.PriceFullSaturday, Other: domain.PriceFullOther}
	}

	return resp
}
