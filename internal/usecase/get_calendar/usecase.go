package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// UseCase use case для календаря доступных дат
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

// Execute строит календарь диапазона одним запросом занятых слотов.
// Без типа события ни один день не выбираем.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: from=%s, to=%s, event=%q", req.From, req.To, req.EventType)

	from, to, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	index, err := uc.composerRepo.GetBookedIndex(ctx, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get booked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	eventType := domain.EventType(req.EventType)
	today := uc.timeProvider.Now()

	resp := &Response{EventType: req.EventType}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(domain.DateFormat)
		resp.Days = append(resp.Days, Day{
			Date:        date,
			Weekday:     d.Weekday().String(),
			Selectable:  domain.IsDateSelectable(date, eventType, index, today),
			BookedSlots: index.Slots(date),
		})
	}

	uc.logger.Info("GetCalendar: built %d days", len(resp.Days))
	return resp, nil
}
