package payment_webhook

import (
	"github.com/m04kA/wedding-composer/internal/integrations/paymentgateway"
	confirmPayment "github.com/m04kA/wedding-composer/internal/usecase/confirm_payment"
)

// WebhookResponse HTTP response model
type WebhookResponse struct {
	Received      bool   `json:"received"`
	ComposerID    string `json:"composerId,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	AmountPaid    int64  `json:"amountPaid,omitempty"`
	Duplicate     bool   `json:"duplicate,omitempty"`
	Ignored       bool   `json:"ignored,omitempty"`
}

// ToUseCaseRequest конвертирует событие шлюза в модель use case
func ToUseCaseRequest(event *paymentgateway.WebhookEvent) *confirmPayment.Request {
	return &confirmPayment.Request{
		Type:        event.Type,
		SessionID:   event.Data.SessionID,
		ReferenceID: event.Data.ReferenceID,
		AmountTotal: event.Data.AmountTotal,
		Status:      event.Data.Status,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *WebhookResponse {
	return &WebhookResponse{
		Received:      true,
		ComposerID:    resp.ComposerID,
		PaymentStatus: resp.PaymentStatus,
		AmountPaid:    resp.AmountPaid,
		Duplicate:     resp.AlreadyCompleted,
		Ignored:       resp.Ignored,
	}
}
