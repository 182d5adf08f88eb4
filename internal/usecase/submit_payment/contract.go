package submit_payment

import (
	"context"
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
	"github.com/m04kA/wedding-composer/internal/integrations/paymentgateway"
)

// ComposerRepository интерфейс репозитория композеров
type ComposerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Composer, error)
	Update(ctx context.Context, id string, patch *domain.ComposerPatch) error
	GetBookedIndex(ctx context.Context, from, to string) (domain.BookedIndex, error)
	IsSlotTaken(ctx context.Context, date, slot, excludeID string) (bool, error)
}

// PricingRepository интерфейс репозитория цен
type PricingRepository interface {
	GetOrDefault(ctx context.Context, eventType domain.EventType) (*domain.PricingConfig, error)
}

// PaymentGateway интерфейс клиента платёжного шлюза
type PaymentGateway interface {
	Configured() bool
	CreateCheckoutSession(ctx context.Context, referenceID string, amount int64) (*paymentgateway.CheckoutSession, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики оплаты
type Metrics interface {
	IncPaymentSession(eventType string)
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

// RealTimeProvider реальный провайдер времени в часовом поясе площадки
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
