package quote_price

import (
	quotePrice "github.com/m04kA/wedding-composer/internal/usecase/quote_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	EventType         string `json:"eventType"`
	Date              string `json:"date"`
	TimeSlot          string `json:"timeSlot"`
	PhotoBook         bool   `json:"photoBook"`
	PhotoBookQuantity int    `json:"photoBookQuantity" validate:"gte=0,lte=10"`
	ExtraTime         bool   `json:"extraTime"`
	ByobBar           bool   `json:"byobBar"`
	Rehearsal         bool   `json:"rehearsal"`
	PaymentMethod     string `json:"paymentMethod"`
	AmountPaid        int64  `json:"amountPaid" validate:"gte=0"`
}

// QuoteResponse HTTP response model, суммы в центах
type QuoteResponse struct {
	BasePrice         int64 `json:"basePrice"`
	AddonsTotal       int64 `json:"addonsTotal"`
	Discount          int64 `json:"discount"`
	TotalPrice        int64 `json:"totalPrice"`
	AmountPaid        int64 `json:"amountPaid"`
	BalanceDue        int64 `json:"balanceDue"`
	ExtraTimeEligible bool  `json:"extraTimeEligible"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *quotePrice.Request {
	return &quotePrice.Request{
		EventType:         r.EventType,
		Date:              r.Date,
		TimeSlot:          r.TimeSlot,
		PhotoBook:         r.PhotoBook,
		PhotoBookQuantity: r.PhotoBookQuantity,
		ExtraTime:         r.ExtraTime,
		ByobBar:           r.ByobBar,
		Rehearsal:         r.Rehearsal,
		PaymentMethod:     r.PaymentMethod,
		AmountPaid:        r.AmountPaid,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		BasePrice:         resp.BasePrice,
		AddonsTotal:       resp.AddonsTotal,
		Discount:          resp.Discount,
		TotalPrice:        resp.TotalPrice,
		AmountPaid:        resp.AmountPaid,
		BalanceDue:        resp.BalanceDue,
		ExtraTimeEligible: resp.ExtraTimeEligible,
	}
}
