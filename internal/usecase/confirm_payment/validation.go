package confirm_payment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/wedding-composer/internal/integrations/paymentgateway"
)

// isPaidEvent событие об успешной оплате; остальные события подтверждаются без изменений
func isPaidEvent(req *Request) bool {
	return req.Type == paymentgateway.EventCheckoutCompleted &&
		(req.Status == "" || req.Status == paymentgateway.StatusPaid)
}

func validateRequest(req *Request) error {
	if _, err := uuid.Parse(req.ReferenceID); err != nil {
		return fmt.Errorf("%w: referenceId must be a composer UUID", ErrInvalidInput)
	}

	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}

	if req.AmountTotal < 0 {
		return fmt.Errorf("%w: amountTotal must not be negative", ErrInvalidInput)
	}

	return nil
}
