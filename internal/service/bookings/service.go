package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/wedding-composer/internal/domain"
	bookingRepo "github.com/m04kA/wedding-composer/internal/infra/storage/booking"
	"github.com/m04kA/wedding-composer/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями старого формата
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create создает бронирование в статусе pending.
// Цена рассчитывается по базовому тарифу для дня недели.
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: creating booking for user=%d, event=%s, date=%s, slot=%s",
		req.UserID, req.EventType, req.EventDate, req.TimeSlot)

	eventType := domain.EventType(req.EventType)
	if !eventType.IsValid() {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, req.EventType)
	}

	eventDate, ok := domain.ParseDate(req.EventDate)
	if !ok {
		return nil, fmt.Errorf("%w: eventDate must be YYYY-MM-DD", ErrInvalidInput)
	}

	if !domain.IsValidSlot(req.EventDate, req.TimeSlot, eventType) {
		return nil, fmt.Errorf("%w: slot %q is not offered on %s for %s", ErrInvalidInput, req.TimeSlot, req.EventDate, eventType)
	}

	if req.GuestCount < 0 || req.GuestCount > domain.MaxGuestCount {
		return nil, fmt.Errorf("%w: guestCount must be between 0 and %d", ErrInvalidInput, domain.MaxGuestCount)
	}

	booking := &domain.Booking{
		UserID:     req.UserID,
		EventType:  eventType,
		EventDate:  eventDate,
		TimeSlot:   req.TimeSlot,
		GuestCount: req.GuestCount,
		Status:     domain.BookingStatusPending,
		TotalPrice: domain.CalculateBasePrice(eventType, eventDate.Weekday()),
		Notes:      req.Notes,
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: booking id=%d created for user=%d", created.ID, req.UserID)
	return models.FromDomainBooking(created), nil
}

// GetByID получает бронирование по ID.
// Пользователь может видеть только своё бронирование.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя.
// Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if req.RequesterID != req.UserID {
		s.logger.Warn("GetUserBookings: user=%d requested bookings of user=%d", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование владельца
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getOwned(ctx, "Cancel", bookingID, userID)
	if err != nil {
		return err
	}

	if !booking.IsActive() {
		s.logger.Warn("Cancel: booking id=%d already cancelled", bookingID)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// getOwned получает бронирование и проверяет, что оно принадлежит userID
func (s *Service) getOwned(ctx context.Context, op string, id int64, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", op, userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
