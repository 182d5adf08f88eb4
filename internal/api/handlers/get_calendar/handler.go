package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	getCalendar "github.com/m04kA/wedding-composer/internal/usecase/get_calendar"
)

const (
	msgInvalidQuery  = "invalid query, expected from=YYYY-MM-DD, to=YYYY-MM-DD and a known eventType"
	msgRangeTooLarge = "date range is too large"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/calendar
// Query params: from, to (YYYY-MM-DD, включительно), eventType
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getCalendar.Request{
		From:      query.Get("from"),
		To:        query.Get("to"),
		EventType: query.Get("eventType"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /availability/calendar - Invalid query: from=%q, to=%q, event_type=%q, error=%v",
				req.From, req.To, req.EventType, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, getCalendar.ErrRangeTooLarge):
			h.logger.Warn("GET /availability/calendar - Range too large: from=%s, to=%s", req.From, req.To)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		default:
			h.logger.Error("GET /availability/calendar - Failed to build calendar: from=%s, to=%s, error=%v",
				req.From, req.To, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/calendar - Calendar built: from=%s, to=%s, days=%d",
		req.From, req.To, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
