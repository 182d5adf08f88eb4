package get_calendar

import (
	getCalendar "github.com/m04kA/wedding-composer/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	EventType string        `json:"eventType"`
	Days      []CalendarDay `json:"days"`
}

// CalendarDay доступность дня
type CalendarDay struct {
	Date        string   `json:"date"`
	Weekday     string   `json:"weekday"`
	Selectable  bool     `json:"selectable"`
	BookedSlots []string `json:"bookedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, day := range resp.Days {
		booked := day.BookedSlots
		if booked == nil {
			booked = []string{}
		}
		days[i] = CalendarDay{
			Date:        day.Date,
			Weekday:     day.Weekday,
			Selectable:  day.Selectable,
			BookedSlots: booked,
		}
	}

	return &CalendarResponse{
		EventType: resp.EventType,
		Days:      days,
	}
}
