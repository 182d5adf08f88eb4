package models

import (
	"errors"
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	UserID     int64
	EventType  string
	EventDate  string // YYYY-MM-DD
	TimeSlot   string
	GuestCount int
	Notes      *string
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	RequesterID int64
	UserID      int64
	Status      *string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	EventType  string  `json:"eventType"`
	EventDate  string  `json:"eventDate"` // "2027-01-09"
	TimeSlot   string  `json:"timeSlot"`
	GuestCount int     `json:"guestCount"`
	Status     string  `json:"status"`
	TotalPrice int64   `json:"totalPrice"` // центы
	Notes      *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		EventType:  string(b.EventType),
		EventDate:  b.EventDate.Format(domain.DateFormat),
		TimeSlot:   b.TimeSlot,
		GuestCount: b.GuestCount,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
