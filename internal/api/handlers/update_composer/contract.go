package update_composer

import (
	"context"

	"github.com/m04kA/wedding-composer/internal/service/composers/models"
)

type ComposerService interface {
	Update(ctx context.Context, id string, requesterID *int64, req *models.UpdateComposerRequest) (*models.ComposerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
