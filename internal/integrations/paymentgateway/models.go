package paymentgateway

// EventCheckoutCompleted тип события об успешной оплате
const EventCheckoutCompleted = "checkout.session.completed"

// StatusPaid статус оплаченной сессии
const StatusPaid = "paid"

// CheckoutRequest запрос на создание платёжной сессии
type CheckoutRequest struct {
	ReferenceID string `json:"referenceId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	SuccessURL  string `json:"successUrl"`
	CancelURL   string `json:"cancelUrl"`
}

// CheckoutSession созданная платёжная сессия
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// WebhookEvent событие, присылаемое шлюзом на /payments/webhook
type WebhookEvent struct {
	Type string      `json:"type" validate:"required"`
	Data WebhookData `json:"data" validate:"required"`
}

// WebhookData данные платёжной сессии в событии
type WebhookData struct {
	SessionID   string `json:"sessionId" validate:"required"`
	ReferenceID string `json:"referenceId" validate:"required"`
	AmountTotal int64  `json:"amountTotal" validate:"gte=0"`
	Status      string `json:"status"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
