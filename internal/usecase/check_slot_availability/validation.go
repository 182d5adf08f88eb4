package check_slot_availability

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/wedding-composer/internal/domain"
)

func validateRequest(req *Request) error {
	if _, ok := domain.ParseDate(req.Date); !ok {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if req.TimeSlot == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	if req.ExcludeID != "" {
		if _, err := uuid.Parse(req.ExcludeID); err != nil {
			return fmt.Errorf("%w: excludeId must be a UUID", ErrInvalidInput)
		}
	}

	return nil
}
