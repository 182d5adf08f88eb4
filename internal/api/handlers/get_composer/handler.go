package get_composer

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	"github.com/m04kA/wedding-composer/internal/api/middleware"
	"github.com/m04kA/wedding-composer/internal/service/composers"
)

const (
	msgInvalidComposerID = "invalid composer id"
	msgNotFound          = "composer not found"
	msgForbidden         = "access denied"
)

type Handler struct {
	service ComposerService
	logger  Logger
}

func NewHandler(service ComposerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/composers/{composerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	composerID := mux.Vars(r)["composerId"]
	if _, err := uuid.Parse(composerID); err != nil {
		h.logger.Warn("GET /composers/{id} - Invalid composer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidComposerID)
		return
	}

	composer, err := h.service.Get(r.Context(), composerID, middleware.OptionalUserID(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, composers.ErrComposerNotFound):
			h.logger.Warn("GET /composers/{id} - Composer not found: composer_id=%s", composerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, composers.ErrAccessDenied):
			h.logger.Warn("GET /composers/{id} - Access denied: composer_id=%s", composerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /composers/{id} - Failed to get composer: composer_id=%s, error=%v", composerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /composers/{id} - Composer retrieved: composer_id=%s, status=%s", composerID, composer.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, composer)
}
