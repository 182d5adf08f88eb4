package submit_composer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	"github.com/m04kA/wedding-composer/internal/api/middleware"
	submitPayment "github.com/m04kA/wedding-composer/internal/usecase/submit_payment"
)

const (
	msgInvalidComposerID  = "invalid composer id"
	msgNotFound           = "composer not found"
	msgForbidden          = "access denied"
	msgAlreadyPaid        = "composer is already paid"
	msgIncomplete         = "event type, date and time slot are required"
	msgDateNotSelectable  = "selected date is no longer available"
	msgSlotTaken          = "selected time slot is already booked"
	msgExtraTime          = "extra time is only available after the saturday evening slot"
	msgPaymentUnavailable = "payment is temporarily unavailable"
	msgPaymentFailed      = "payment provider error, please try again"
)

type Handler struct {
	useCase SubmitPaymentUseCase
	logger  Logger
}

func NewHandler(useCase SubmitPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/composers/{composerId}/submit
// Фиксирует цену и слот, создаёт платёжную сессию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	composerID := mux.Vars(r)["composerId"]

	result, err := h.useCase.Execute(r.Context(), &submitPayment.Request{
		ComposerID:  composerID,
		RequesterID: middleware.OptionalUserID(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, submitPayment.ErrInvalidInput):
			h.logger.Warn("POST /composers/{id}/submit - Invalid composer ID: %q", composerID)
			handlers.RespondBadRequest(w, msgInvalidComposerID)

		case errors.Is(err, submitPayment.ErrComposerNotFound):
			h.logger.Warn("POST /composers/{id}/submit - Composer not found: composer_id=%s", composerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submitPayment.ErrAccessDenied):
			h.logger.Warn("POST /composers/{id}/submit - Access denied: composer_id=%s", composerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitPayment.ErrAlreadyPaid):
			h.logger.Warn("POST /composers/{id}/submit - Already paid: composer_id=%s", composerID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, submitPayment.ErrIncomplete):
			h.logger.Warn("POST /composers/{id}/submit - Incomplete composer: composer_id=%s", composerID)
			handlers.RespondBadRequest(w, msgIncomplete)

		case errors.Is(err, submitPayment.ErrDateNotSelectable):
			h.logger.Warn("POST /composers/{id}/submit - Date not selectable: composer_id=%s", composerID)
			handlers.RespondBadRequest(w, msgDateNotSelectable)

		case errors.Is(err, submitPayment.ErrSlotTaken):
			h.logger.Warn("POST /composers/{id}/submit - Slot taken: composer_id=%s", composerID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, submitPayment.ErrExtraTimeNotEligible):
			h.logger.Warn("POST /composers/{id}/submit - Extra time not eligible: composer_id=%s", composerID)
			handlers.RespondBadRequest(w, msgExtraTime)

		case errors.Is(err, submitPayment.ErrPaymentUnavailable):
			h.logger.Error("POST /composers/{id}/submit - Payment gateway not configured: composer_id=%s", composerID)
			handlers.RespondServiceUnavailable(w, msgPaymentUnavailable)

		case errors.Is(err, submitPayment.ErrPaymentFailed):
			h.logger.Error("POST /composers/{id}/submit - Payment gateway failed: composer_id=%s, error=%v", composerID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentFailed)

		default:
			h.logger.Error("POST /composers/{id}/submit - Failed to submit composer: composer_id=%s, error=%v", composerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /composers/{id}/submit - Payment session created: composer_id=%s, session_id=%s, amount=%d",
		composerID, result.SessionID, result.BalanceDue)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
