package quote_price

// Request выбор клиента для расчёта цены
type Request struct {
	EventType         string
	Date              string
	TimeSlot          string
	PhotoBook         bool
	PhotoBookQuantity int
	ExtraTime         bool
	ByobBar           bool
	Rehearsal         bool
	PaymentMethod     string
	AmountPaid        int64
}

// Response разбивка цены, центы
type Response struct {
	BasePrice         int64
	AddonsTotal       int64
	Discount          int64
	TotalPrice        int64
	AmountPaid        int64
	BalanceDue        int64
	ExtraTimeEligible bool
}
