package get_available_slots

import (
	"fmt"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// validateRequest пустые поля допустимы (форма ещё не заполнена),
// но заданные значения должны быть корректны
func validateRequest(req *Request) error {
	if req.Date != "" {
		if _, ok := domain.ParseDate(req.Date); !ok {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	if req.EventType != "" && !domain.EventType(req.EventType).IsValid() {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, req.EventType)
	}

	return nil
}

// isComplete хватает ли данных, чтобы искать слоты
func isComplete(req *Request) bool {
	return req.Date != "" && req.EventType != ""
}
