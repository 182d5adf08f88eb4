package update_composer

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	"github.com/m04kA/wedding-composer/internal/api/middleware"
	"github.com/m04kA/wedding-composer/internal/service/composers"
	"github.com/m04kA/wedding-composer/internal/service/composers/models"
)

const (
	msgInvalidComposerID  = "invalid composer id"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "composer not found"
	msgForbidden          = "access denied"
	msgLocked             = "composer can no longer be edited"
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

// Handle PATCH /api/v1/composers/{composerId}
// Автосохранение шага мастера: меняются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	composerID := mux.Vars(r)["composerId"]
	if _, err := uuid.Parse(composerID); err != nil {
		h.logger.Warn("PATCH /composers/{id} - Invalid composer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidComposerID)
		return
	}

	var req models.UpdateComposerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /composers/{id} - Invalid request body: composer_id=%s, error=%v", composerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /composers/{id} - Validation failed: composer_id=%s, error=%v", composerID, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	composer, err := h.service.Update(r.Context(), composerID, middleware.OptionalUserID(r.Context()), &req)
	if err != nil {
		switch {
		case errors.Is(err, composers.ErrComposerNotFound):
			h.logger.Warn("PATCH /composers/{id} - Composer not found: composer_id=%s", composerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, composers.ErrAccessDenied):
			h.logger.Warn("PATCH /composers/{id} - Access denied: composer_id=%s", composerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, composers.ErrComposerLocked):
			h.logger.Warn("PATCH /composers/{id} - Composer locked: composer_id=%s", composerID)
			handlers.RespondConflict(w, msgLocked)

		case errors.Is(err, composers.ErrInvalidInput):
			h.logger.Warn("PATCH /composers/{id} - Invalid input: composer_id=%s, error=%v", composerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /composers/{id} - Failed to update composer: composer_id=%s, error=%v", composerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /composers/{id} - Composer saved: composer_id=%s, step=%d, total=%d",
		composerID, composer.CurrentStep, composer.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, composer)
}
