package get_booking

import (
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
	"github.com/m04kA/wedding-composer/internal/service/bookings/models"
)

// BookingDetailsResponse бронирование с данными площадки: подпись слота, день недели,
// признаки предстоящего события и возможности отмены
type BookingDetailsResponse struct {
	*models.BookingResponse

	Weekday     string `json:"weekday,omitempty"`
	SlotLabel   string `json:"slotLabel,omitempty"`
	ArrivalNote string `json:"arrivalNote,omitempty"`
	Upcoming    bool   `json:"upcoming"`
	Cancellable bool   `json:"cancellable"`
}

// newDetails today - дата "сегодня" в часовом поясе площадки, YYYY-MM-DD
func newDetails(b *models.BookingResponse, today string) *BookingDetailsResponse {
	resp := &BookingDetailsResponse{BookingResponse: b}

	if d, ok := domain.ParseDate(b.EventDate); ok {
		resp.Weekday = d.Weekday().String()
	}

	// слот ищем по расписанию даты, старые брони могут не попасть в текущую сетку
	for _, slot := range domain.GetTimeSlots(b.EventDate, domain.EventType(b.EventType)) {
		if slot.Value == b.TimeSlot {
			resp.SlotLabel = slot.Label
			resp.ArrivalNote = slot.ArrivalNote
			break
		}
	}

	resp.Upcoming = b.EventDate >= today
	resp.Cancellable = resp.Upcoming && b.Status != string(domain.BookingStatusCancelled)

	return resp
}

func venueToday(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(domain.DateFormat)
}
