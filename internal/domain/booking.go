package domain

import "time"

// BookingStatus status of a legacy booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking a row of the legacy bookings table, kept for reservations made
// before the composer wizard existed
type Booking struct {
	ID         int64
	UserID     int64
	EventType  EventType
	EventDate  time.Time
	TimeSlot   string
	GuestCount int
	Status     BookingStatus
	TotalPrice int64 // cents
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// IsValid returns true for a known booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}
