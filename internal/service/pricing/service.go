package pricing

import (
	"context"
	"fmt"

	"github.com/m04kA/wedding-composer/internal/domain"
	"github.com/m04kA/wedding-composer/internal/service/pricing/models"
)

// Service сервис чтения ценовой конфигурации
type Service struct {
	pricingRepo PricingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса цен
func NewService(pricingRepo PricingRepository, logger Logger) *Service {
	return &Service{
		pricingRepo: pricingRepo,
		logger:      logger,
	}
}

// GetConfig возвращает цены для типа события.
// Публичный метод: мастер показывает цены допов до выбора даты.
func (s *Service) GetConfig(ctx context.Context, eventType string) (*models.PricingConfigResponse, error) {
	s.logger.Info("GetConfig: fetching pricing for event=%s", eventType)

	et := domain.EventType(eventType)
	if !et.IsValid() {
		s.logger.Warn("GetConfig: unknown event type %q", eventType)
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, eventType)
	}

	cfg, err := s.pricingRepo.GetOrDefault(ctx, et)
	if err != nil {
		s.logger.Error("GetConfig: repository error for event=%s: %v", eventType, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPricingConfig(cfg), nil
}
