package get_calendar

// Request диапазон дат календаря, обе границы включительно
type Request struct {
	From      string
	To        string
	EventType string
}

// Response календарь доступности
type Response struct {
	EventType string
	Days      []Day
}

// Day доступность одного дня
type Day struct {
	Date        string
	Weekday     string
	Selectable  bool
	BookedSlots []string
}
