package create_composer

import (
	"context"

	"github.com/m04kA/wedding-composer/internal/service/composers/models"
)

type ComposerService interface {
	Create(ctx context.Context, req *models.CreateComposerRequest) (*models.ComposerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
