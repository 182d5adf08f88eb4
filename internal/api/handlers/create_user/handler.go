package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	"github.com/m04kA/wedding-composer/internal/service/users"
	"github.com/m04kA/wedding-composer/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmailTaken         = "an account with this email already exists"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// пароль в лог не попадает
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /users - Validation failed: email=%s, error=%v", req.Email, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /users - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /users - Failed to create user: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
