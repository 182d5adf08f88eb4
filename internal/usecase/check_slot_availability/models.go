package check_slot_availability

// Request проверяемая пара дата/слот
type Request struct {
	Date      string
	TimeSlot  string
	ExcludeID string // композер, который не считается конфликтом (обычно собственный)
}

// Response результат проверки
type Response struct {
	Available bool
}
