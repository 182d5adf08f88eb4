package composers

import (
	"context"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// ComposerRepository интерфейс репозитория композеров
type ComposerRepository interface {
	Create(ctx context.Context, c *domain.Composer) (*domain.Composer, error)
	GetByID(ctx context.Context, id string) (*domain.Composer, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Composer, error)
	Update(ctx context.Context, id string, patch *domain.ComposerPatch) error
}

// PricingRepository интерфейс репозитория цен
type PricingRepository interface {
	GetOrDefault(ctx context.Context, eventType domain.EventType) (*domain.PricingConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator генератор идентификаторов композеров
type IDGenerator func() string

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
