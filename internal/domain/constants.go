package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking lead time, in days from today
const (
	MinLeadDaysSimplified = 7
	MinLeadDaysFull       = 14
)

// Base package prices, cents
const (
	PriceFullSaturday     int64 = 450000
	PriceFullOther        int64 = 390000
	PriceSimplifiedFriday int64 = 150000
	PriceSimplifiedOther  int64 = 99900
	PriceUnknownEventType int64 = 390000 // fallback until an event type is chosen
)

// Default add-on prices and payment discounts, cents.
// Used when the pricing_config table has no row for the event type.
const (
	DefaultPhotoBookPrice       int64 = 15000
	DefaultExtraTimePrice       int64 = 100000
	DefaultByobBarPrice         int64 = 40000
	DefaultRehearsalPrice       int64 = 25000
	DefaultACHDiscountFull      int64 = 5000
	DefaultACHDiscountSimple    int64 = 2500
	DefaultAffirmDiscountFull   int64 = 5000
	DefaultAffirmDiscountSimple int64 = 2500
)

// Business validation constants
const (
	MinPhotoBookQuantity = 1
	MaxPhotoBookQuantity = 10
	MaxGuestCount        = 500
	MaxNotesLength       = 2000
	MaxScriptLength      = 20000
	MaxCalendarRangeDays = 93
	CurrencyUSD          = "usd"
)
