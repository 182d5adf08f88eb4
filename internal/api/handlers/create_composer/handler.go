package create_composer

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	"github.com/m04kA/wedding-composer/internal/api/middleware"
	"github.com/m04kA/wedding-composer/internal/service/composers"
	"github.com/m04kA/wedding-composer/internal/service/composers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/composers
// Владелец берётся из X-User-ID, если заголовок передан
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateComposerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /composers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /composers - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	userID := middleware.OptionalUserID(r.Context())

	composer, err := h.service.Create(r.Context(), &models.CreateComposerRequest{
		UserID:    userID,
		EventType: req.EventType,
	})
	if err != nil {
		switch {
		case errors.Is(err, composers.ErrInvalidInput):
			h.logger.Warn("POST /composers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /composers - Failed to create composer: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /composers - Composer created: composer_id=%s, event_type=%s", composer.ID, composer.EventType)
	handlers.RespondJSON(w, http.StatusCreated, composer)
}
