package composers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/wedding-composer/internal/domain"
	composerRepo "github.com/m04kA/wedding-composer/internal/infra/storage/composer"
	"github.com/m04kA/wedding-composer/internal/service/composers/models"
)

// Service сервис для работы с композерами (черновиками бронирования)
type Service struct {
	composerRepo ComposerRepository
	pricingRepo  PricingRepository
	txManager    TransactionManager
	newID        IDGenerator
	logger       Logger
}

// NewService создает новый экземпляр сервиса композеров
func NewService(
	composerRepo ComposerRepository,
	pricingRepo PricingRepository,
	txManager TransactionManager,
	newID IDGenerator,
	logger Logger,
) *Service {
	return &Service{
		composerRepo: composerRepo,
		pricingRepo:  pricingRepo,
		txManager:    txManager,
		newID:        newID,
		logger:       logger,
	}
}

// Create создает композер в статусе pending с ценой по умолчанию
func (s *Service) Create(ctx context.Context, req *models.CreateComposerRequest) (*models.ComposerResponse, error) {
	s.logger.Info("Create: creating composer, event=%q", req.EventType)

	eventType := domain.EventType(req.EventType)
	if req.EventType != "" && !eventType.IsValid() {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, req.EventType)
	}

	c := &domain.Composer{
		ID:                s.newID(),
		UserID:            req.UserID,
		EventType:         eventType,
		PhotoBookQuantity: domain.MinPhotoBookQuantity,
		PaymentStatus:     domain.PaymentStatusPending,
	}

	prices, err := s.pricingRepo.GetOrDefault(ctx, eventType)
	if err != nil {
		s.logger.Error("Create: failed to load pricing for event=%q: %v", eventType, err)
		return nil, fmt.Errorf("%w: Create - pricing error: %v", ErrInternal, err)
	}
	c.Reprice(prices)

	created, err := s.composerRepo.Create(ctx, c)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: composer id=%s created", created.ID)
	return models.FromDomainComposer(created), nil
}

// Get получает композер по ID.
// Если requesterID задан, композер с другим владельцем недоступен.
func (s *Service) Get(ctx context.Context, id string, requesterID *int64) (*models.ComposerResponse, error) {
	s.logger.Info("Get: fetching composer id=%s", id)

	c, err := s.getAccessible(ctx, "Get", id, requesterID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainComposer(c), nil
}

// Update применяет автосохранение шага мастера и пересчитывает цену.
// Композер после начала оплаты не меняется.
func (s *Service) Update(ctx context.Context, id string, requesterID *int64, req *models.UpdateComposerRequest) (*models.ComposerResponse, error) {
	s.logger.Info("Update: autosaving composer id=%s", id)

	var updated *domain.Composer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.getAccessible(ctx, "Update", id, requesterID)
		if err != nil {
			return err
		}

		if !current.IsEditable() {
			s.logger.Warn("Update: composer id=%s is %s", id, current.PaymentStatus)
			return ErrComposerLocked
		}

		patch, err := buildPatch(current, req)
		if err != nil {
			s.logger.Warn("Update: invalid input for composer id=%s: %v", id, err)
			return err
		}

		next := *current
		patch.Apply(&next)

		// Extra Time доступен только после субботнего вечернего слота
		if next.ExtraTimeAddon && !domain.IsExtraTimeEligible(next.EventType, next.Date(), next.Slot()) {
			s.logger.Info("Update: dropping ineligible extra time for composer id=%s", id)
			off := false
			patch.ExtraTimeAddon = &off
			next.ExtraTimeAddon = false
		}

		prices, err := s.pricingRepo.GetOrDefault(ctx, next.EventType)
		if err != nil {
			s.logger.Error("Update: failed to load pricing for composer id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - pricing error: %v", ErrInternal, err)
		}
		next.Reprice(prices)

		priceFields := domain.PriceFields(&next)
		patch.BasePackagePrice = priceFields.BasePackagePrice
		patch.ACHDiscountAmount = priceFields.ACHDiscountAmount
		patch.AffirmDiscountAmount = priceFields.AffirmDiscountAmount
		patch.TotalPrice = priceFields.TotalPrice

		if err := s.composerRepo.Update(ctx, id, patch); err != nil {
			if errors.Is(err, composerRepo.ErrComposerNotFound) {
				return ErrComposerNotFound
			}
			s.logger.Error("Update: repository error for composer id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: composer id=%s saved, total=%d", id, updated.TotalPrice)
	return models.FromDomainComposer(updated), nil
}

// ListByUser возвращает композеры владельца
func (s *Service) ListByUser(ctx context.Context, userID, requesterID int64) (*models.ComposerListResponse, error) {
	s.logger.Info("ListByUser: fetching composers of user=%d", userID)

	if userID != requesterID {
		s.logger.Warn("ListByUser: user=%d requested composers of user=%d", requesterID, userID)
		return nil, ErrAccessDenied
	}

	list, err := s.composerRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: found %d composers for user=%d", len(list), userID)
	return models.FromDomainComposerList(list), nil
}

func (s *Service) getAccessible(ctx context.Context, op, id string, requesterID *int64) (*domain.Composer, error) {
	c, err := s.composerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, composerRepo.ErrComposerNotFound) {
			s.logger.Warn("%s: composer id=%s not found", op, id)
			return nil, ErrComposerNotFound
		}
		s.logger.Error("%s: repository error for composer id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if requesterID != nil && c.UserID != nil && *c.UserID != *requesterID {
		s.logger.Warn("%s: access denied for user=%d to composer id=%s", op, *requesterID, id)
		return nil, ErrAccessDenied
	}

	return c, nil
}
