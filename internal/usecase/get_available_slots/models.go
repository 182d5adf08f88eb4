package get_available_slots

// Request запрос слотов на дату
type Request struct {
	Date      string // YYYY-MM-DD, может быть пустой
	EventType string // может быть пустым
}

// Response слоты даты с признаком занятости
type Response struct {
	Date       string
	EventType  string
	Selectable bool // дату можно выбрать в календаре
	Slots      []Slot
}

// Slot временной слот
type Slot struct {
	Value       string
	Label       string
	ArrivalNote string
	Booked      bool
}
