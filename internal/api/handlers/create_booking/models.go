package create_booking

import (
	"github.com/m04kA/wedding-composer/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EventType  string  `json:"eventType" validate:"required"`
	EventDate  string  `json:"eventDate" validate:"required"` // "2027-01-09"
	TimeSlot   string  `json:"timeSlot" validate:"required"`
	GuestCount int     `json:"guestCount" validate:"gte=0"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBookingRequest) ToServiceRequest(userID int64) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		UserID:     userID,
		EventType:  r.EventType,
		EventDate:  r.EventDate,
		TimeSlot:   r.TimeSlot,
		GuestCount: r.GuestCount,
		Notes:      r.Notes,
	}
}
