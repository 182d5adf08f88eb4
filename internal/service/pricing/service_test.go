package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-composer/internal/domain"
	"github.com/m04kA/wedding-composer/pkg/logger"
)

type fakeRepo struct {
	cfg *domain.PricingConfig
	err error
}

func (f fakeRepo) GetOrDefault(_ context.Context, et domain.EventType) (*domain.PricingConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.cfg != nil {
		return f.cfg, nil
	}
	return domain.DefaultPricingConfig(et), nil
}

func TestService_GetConfig(t *testing.T) {
	svc := NewService(fakeRepo{}, logger.NewNop())

	full, err := svc.GetConfig(context.Background(), "modest-wedding")
	require.NoError(t, err)
	assert.Equal(t, domain.PriceFullSaturday, full.BasePrices.Saturday)
	assert.Equal(t, domain.DefaultACHDiscountFull, full.ACHDiscount)

	simple, err := svc.GetConfig(context.Background(), "vow-renewal")
	require.NoError(t, err)
	assert.Equal(t, domain.PriceSimplifiedFriday, simple.BasePrices.Friday)
	assert.Zero(t, simple.BasePrices.Saturday)
	assert.Equal(t, domain.DefaultACHDiscountSimple, simple.ACHDiscount)
}

func TestService_GetConfig_StoredRow(t *testing.T) {
	stored := domain.DefaultPricingConfig(domain.EventOther)
	stored.ByobBarPrice = 12345
	svc := NewService(fakeRepo{cfg: stored}, logger.NewNop())

	resp, err := svc.GetConfig(context.Background(), "other")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), resp.ByobBarPrice)
}

func TestService_GetConfig_Errors(t *testing.T) {
	_, err := NewService(fakeRepo{}, logger.NewNop()).GetConfig(context.Background(), "birthday")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewService(fakeRepo{err: errors.New("db down")}, logger.NewNop()).GetConfig(context.Background(), "other")
	assert.ErrorIs(t, err, ErrInternal)
}
