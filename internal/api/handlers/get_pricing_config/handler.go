package get_pricing_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	"github.com/m04kA/wedding-composer/internal/service/pricing"
)

const (
	msgInvalidEventType = "unknown event type"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/pricing/{eventType}
// Публичный endpoint. Если цен в БД нет, сервис отдаёт цены по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventType := mux.Vars(r)["eventType"]

	result, err := h.service.GetConfig(r.Context(), eventType)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("GET /pricing/{eventType} - Unknown event type: %q", eventType)
			handlers.RespondBadRequest(w, msgInvalidEventType)

		default:
			h.logger.Error("GET /pricing/{eventType} - Failed to get pricing: event_type=%s, error=%v", eventType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pricing/{eventType} - Pricing retrieved: event_type=%s", eventType)
	handlers.RespondJSON(w, http.StatusOK, result)
}
