package pricing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/wedding-composer/internal/domain"
	"github.com/m04kA/wedding-composer/pkg/dbmetrics"
	"github.com/m04kA/wedding-composer/pkg/psqlbuilder"
)

// Repository репозиторий цен дополнительных услуг и скидок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория цен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEventType получает цены для типа события
func (r *Repository) GetByEventType(ctx context.Context, eventType domain.EventType) (*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"event_type",
		"photo_book_price",
		"extra_time_price",
		"byob_bar_price",
		"rehearsal_price",
		"ach_discount",
		"affirm_discount",
		"updated_at",
	).
		From("pricing_config").
		Where(squirrel.Eq{"event_type": eventType}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEventType - build select query: %v", ErrBuildQuery, err)
	}

	var (
		cfg       domain.PricingConfig
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.EventType,
		&cfg.PhotoBookPrice,
		&cfg.ExtraTimePrice,
		&cfg.ByobBarPrice,
		&cfg.RehearsalPrice,
		&cfg.ACHDiscount,
		&cfg.AffirmDiscount,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEventType - scan pricing config: %v", ErrScanRow, err)
	}

	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// GetOrDefault получает цены для типа события.
// Если строки нет, возвращает встроенные цены по умолчанию.
func (r *Repository) GetOrDefault(ctx context.Context, eventType domain.EventType) (*domain.PricingConfig, error) {
	cfg, err := r.GetByEventType(ctx, eventType)
	if errors.Is(err, ErrConfigNotFound) {
		return domain.DefaultPricingConfig(eventType), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
