package quote_price

import (
	"fmt"

	"github.com/m04kA/wedding-composer/internal/domain"
)

func validateRequest(req *Request) error {
	if req.EventType != "" && !domain.EventType(req.EventType).IsValid() {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, req.EventType)
	}

	if req.Date != "" {
		if _, ok := domain.ParseDate(req.Date); !ok {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	if req.PaymentMethod != "" && !domain.PaymentMethod(req.PaymentMethod).IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	if req.PhotoBookQuantity < 0 || req.PhotoBookQuantity > domain.MaxPhotoBookQuantity {
		return fmt.Errorf("%w: photoBookQuantity must be at most %d", ErrInvalidInput, domain.MaxPhotoBookQuantity)
	}

	if req.AmountPaid < 0 {
		return fmt.Errorf("%w: amountPaid must not be negative", ErrInvalidInput)
	}

	return nil
}
