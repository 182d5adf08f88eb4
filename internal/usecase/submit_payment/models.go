package submit_payment

// Request отправка композера на оплату
type Request struct {
	ComposerID  string
	RequesterID *int64 // пользователь из X-User-ID, если передан
}

// Response созданная платёжная сессия
type Response struct {
	ComposerID    string
	PaymentStatus string
	SessionID     string
	CheckoutURL   string
	TotalPrice    int64
	BalanceDue    int64
}
