package payment_webhook

import (
	"errors"
	"net/http"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	"github.com/m04kA/wedding-composer/internal/integrations/paymentgateway"
	confirmPayment "github.com/m04kA/wedding-composer/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "invalid webhook payload"
	msgNotFound           = "composer not found"
	msgNotInitiated       = "payment was not initiated for this composer"
	msgSessionMismatch    = "session does not match composer"
	msgSlotTaken          = "time slot was booked by another payment"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/webhook
// Подлинность события проверяет middleware.WebhookSecret
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var event paymentgateway.WebhookEvent
	if err := handlers.DecodeJSON(r, &event); err != nil {
		h.logger.Warn("POST /payments/webhook - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&event); err != nil {
		h.logger.Warn("POST /payments/webhook - Validation failed: type=%s, error=%v", event.Type, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(&event))
	if err != nil {
		ref := event.Data.ReferenceID
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/webhook - Invalid event: reference=%s, error=%v", ref, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, confirmPayment.ErrComposerNotFound):
			h.logger.Warn("POST /payments/webhook - Composer not found: reference=%s", ref)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPayment.ErrNotInitiated):
			h.logger.Warn("POST /payments/webhook - Payment not initiated: reference=%s", ref)
			handlers.RespondConflict(w, msgNotInitiated)

		case errors.Is(err, confirmPayment.ErrSessionMismatch):
			h.logger.Warn("POST /payments/webhook - Session mismatch: reference=%s, session_id=%s", ref, event.Data.SessionID)
			handlers.RespondConflict(w, msgSessionMismatch)

		case errors.Is(err, confirmPayment.ErrSlotTaken):
			h.logger.Error("POST /payments/webhook - Slot taken on confirmation, refund required: reference=%s, session_id=%s",
				ref, event.Data.SessionID)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /payments/webhook - Failed to confirm payment: reference=%s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/webhook - Event processed: type=%s, reference=%s, status=%s, ignored=%t, duplicate=%t",
		event.Type, result.ComposerID, result.PaymentStatus, result.Ignored, result.AlreadyCompleted)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
