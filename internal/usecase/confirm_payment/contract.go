package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// ComposerRepository интерфейс репозитория композеров
type ComposerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Composer, error)
	Update(ctx context.Context, id string, patch *domain.ComposerPatch) error
	IsSlotTaken(ctx context.Context, date, slot, excludeID string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики оплаты
type Metrics interface {
	IncPaymentCompleted(eventType string)
	IncSlotConflict(stage string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
