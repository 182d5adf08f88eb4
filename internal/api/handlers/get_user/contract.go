package get_user

import (
	"context"

	"github.com/m04kA/wedding-composer/internal/service/users/models"
)

type UserService interface {
	GetByID(ctx context.Context, id, requesterID int64) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
