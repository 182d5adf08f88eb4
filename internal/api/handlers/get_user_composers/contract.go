package get_user_composers

import (
	"context"

	"github.com/m04kA/wedding-composer/internal/service/composers/models"
)

type ComposerService interface {
	ListByUser(ctx context.Context, userID, requesterID int64) (*models.ComposerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
