package confirm_payment

// Request событие платёжного шлюза
type Request struct {
	Type        string
	SessionID   string
	ReferenceID string // ID композера
	AmountTotal int64
	Status      string
}

// Response результат обработки события
type Response struct {
	ComposerID       string
	PaymentStatus    string
	AmountPaid       int64
	AlreadyCompleted bool // повторное событие, ничего не изменено
	Ignored          bool // событие не об успешной оплате
}
