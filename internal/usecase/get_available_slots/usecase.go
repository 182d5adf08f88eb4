package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// UseCase use case для получения слотов даты
type UseCase struct {
	composerRepo ComposerRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(composerRepo ComposerRepository, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		composerRepo: composerRepo,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute возвращает слоты даты; слоты оплаченных композеров помечены как занятые.
// Неполный запрос даёт пустой список, а не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%q, event=%q", req.Date, req.EventType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:      req.Date,
		EventType: req.EventType,
		Slots:     []Slot{},
	}

	if !isComplete(req) {
		return resp, nil
	}

	eventType := domain.EventType(req.EventType)
	slots := domain.GetTimeSlots(req.Date, eventType)
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no slots for %s on %s", eventType, req.Date)
		return resp, nil
	}

	index, err := uc.composerRepo.GetBookedIndex(ctx, req.Date, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	for _, s := range slots {
		resp.Slots = append(resp.Slots, Slot{
			Value:       s.Value,
			Label:       s.Label,
			ArrivalNote: s.ArrivalNote,
			Booked:      domain.IsSlotBooked(req.Date, s.Value, index),
		})
	}
	resp.Selectable = domain.IsDateSelectable(req.Date, eventType, index, uc.timeProvider.Now())

	uc.logger.Info("GetAvailableSlots: %d slots on %s, selectable=%t", len(resp.Slots), req.Date, resp.Selectable)
	return resp, nil
}
