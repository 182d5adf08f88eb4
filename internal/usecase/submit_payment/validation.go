package submit_payment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/wedding-composer/internal/domain"
)

func validateRequest(req *Request) error {
	if _, err := uuid.Parse(req.ComposerID); err != nil {
		return fmt.Errorf("%w: composer id must be a UUID", ErrInvalidInput)
	}
	return nil
}

// validateComposer проверяет, что композер готов к оплате
func validateComposer(c *domain.Composer) error {
	if c.IsCompleted() {
		return ErrAlreadyPaid
	}

	if !c.EventType.IsValid() || !c.HasDateTime() {
		return ErrIncomplete
	}

	if !domain.IsValidSlot(c.Date(), c.Slot(), c.EventType) {
		return fmt.Errorf("%w: slot %s is not offered on %s", ErrIncomplete, c.Slot(), c.Date())
	}

	if c.ExtraTimeAddon && !domain.IsExtraTimeEligible(c.EventType, c.Date(), c.Slot()) {
		return ErrExtraTimeNotEligible
	}

	return nil
}
