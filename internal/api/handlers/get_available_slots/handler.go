package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/wedding-composer/internal/usecase/get_available_slots"
)

const (
	msgInvalidQuery = "invalid date or eventType, expected date=YYYY-MM-DD and a known event type"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots
// Query params: date (YYYY-MM-DD), eventType; без любого из них слотов нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getAvailableSlots.Request{
		Date:      query.Get("date"),
		EventType: query.Get("eventType"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid query: date=%q, event_type=%q, error=%v",
				req.Date, req.EventType, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /availability/slots - Failed to get slots: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/slots - Slots retrieved: date=%s, event_type=%s, slots_count=%d",
		req.Date, req.EventType, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
