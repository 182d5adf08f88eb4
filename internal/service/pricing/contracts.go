package pricing

import (
	"context"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// PricingRepository интерфейс репозитория цен
type PricingRepository interface {
	GetOrDefault(ctx context.Context, eventType domain.EventType) (*domain.PricingConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
