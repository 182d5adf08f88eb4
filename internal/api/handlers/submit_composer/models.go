package submit_composer

import (
	submitPayment "github.com/m04kA/wedding-composer/internal/usecase/submit_payment"
)

// SubmitResponse HTTP response model
type SubmitResponse struct {
	ComposerID    string `json:"composerId"`
	PaymentStatus string `json:"paymentStatus"`
	SessionID     string `json:"sessionId"`
	CheckoutURL   string `json:"checkoutUrl"`
	TotalPrice    int64  `json:"totalPrice"`
	BalanceDue    int64  `json:"balanceDue"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitPayment.Response) *SubmitResponse {
	return &SubmitResponse{
		ComposerID:    resp.ComposerID,
		PaymentStatus: resp.PaymentStatus,
		SessionID:     resp.SessionID,
		CheckoutURL:   resp.CheckoutURL,
		TotalPrice:    resp.TotalPrice,
		BalanceDue:    resp.BalanceDue,
	}
}
