package get_pricing_config

import (
	"context"

	"github.com/m04kA/wedding-composer/internal/service/pricing/models"
)

type PricingService interface {
	GetConfig(ctx context.Context, eventType string) (*models.PricingConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
