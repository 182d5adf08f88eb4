package check_slot_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	checkSlot "github.com/m04kA/wedding-composer/internal/usecase/check_slot_availability"
)

const (
	msgInvalidQuery = "date (YYYY-MM-DD) and timeSlot are required, excludeId must be a composer id"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/check
// Query params: date, timeSlot, excludeId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &checkSlot.Request{
		Date:      query.Get("date"),
		TimeSlot:  query.Get("timeSlot"),
		ExcludeID: query.Get("excludeId"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("GET /availability/check - Invalid query: date=%q, slot=%q, error=%v",
				req.Date, req.TimeSlot, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /availability/check - Failed to check slot: date=%s, slot=%s, error=%v",
				req.Date, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/check - Slot checked: date=%s, slot=%s, available=%t",
		req.Date, req.TimeSlot, result.Available)
	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{Available: result.Available})
}
