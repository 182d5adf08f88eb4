package get_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// validateRequest проверяет диапазон и возвращает его границы
func validateRequest(req *Request) (time.Time, time.Time, error) {
	from, ok := domain.ParseDate(req.From)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidInput)
	}

	to, ok := domain.ParseDate(req.To)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidInput)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	if days := int(to.Sub(from).Hours()/24) + 1; days > domain.MaxCalendarRangeDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d days requested, at most %d allowed",
			ErrRangeTooLarge, days, domain.MaxCalendarRangeDays)
	}

	if req.EventType != "" && !domain.EventType(req.EventType).IsValid() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, req.EventType)
	}

	return from, to, nil
}
