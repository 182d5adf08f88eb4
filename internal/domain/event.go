package domain

// EventType kind of ceremony the customer is composing
type EventType string

const (
	EventModestWedding   EventType = "modest-wedding"
	EventModestElopement EventType = "modest-elopement"
	EventVowRenewal      EventType = "vow-renewal"
	EventOther           EventType = "other"
)

// EventGroup groups event types that share the same schedule and pricing rules
type EventGroup int

const (
	GroupUnknown EventGroup = iota
	// GroupFull weekend-length ceremonies (Friday evening, Saturday, Sunday)
	GroupFull
	// GroupSimplified short midweek/Friday ceremonies
	GroupSimplified
)

// AllEventTypes every supported event type, in wizard order
var AllEventTypes = []EventType{
	EventModestWedding,
	EventModestElopement,
	EventVowRenewal,
	EventOther,
}

// Group returns the schedule/pricing group of the event type
func (e EventType) Group() EventGroup {
	switch e {
	case EventModestWedding, EventOther:
		return GroupFull
	case EventModestElopement, EventVowRenewal:
		return GroupSimplified
	default:
		return GroupUnknown
	}
}

// IsValid returns true for a known event type
func (e EventType) IsValid() bool {
	return e.Group() != GroupUnknown
}

// IsFull returns true for modest-wedding and other
func (e EventType) IsFull() bool {
	return e.Group() == GroupFull
}

// IsSimplified returns true for modest-elopement and vow-renewal
func (e EventType) IsSimplified() bool {
	return e.Group() == GroupSimplified
}

// PaymentMethod how the customer pays the balance
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentAffirm     PaymentMethod = "affirm"
	PaymentACH        PaymentMethod = "ach"
	PaymentECheck     PaymentMethod = "echeck"
	PaymentPayPal     PaymentMethod = "paypal"
)

// IsValid returns true for a known payment method
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCreditCard, PaymentAffirm, PaymentACH, PaymentECheck, PaymentPayPal:
		return true
	default:
		return false
	}
}

// PaymentStatus lifecycle of a composer record
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusInitiated PaymentStatus = "payment_initiated"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// IsValid returns true for a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusInitiated, PaymentStatusCompleted:
		return true
	default:
		return false
	}
}
