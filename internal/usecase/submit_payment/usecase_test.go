package submit_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-composer/internal/domain"
	composerRepo "github.com/m04kA/wedding-composer/internal/infra/storage/composer"
	"github.com/m04kA/wedding-composer/internal/integrations/paymentgateway"
	"github.com/m04kA/wedding-composer/pkg/logger"
	"github.com/m04kA/wedding-composer/pkg/ptr"
)

const composerID = "0b5f3c1e-7f4e-4a55-9c0d-3c3f0a6a2f11"

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

type fakeComposerRepo struct {
	composer *domain.Composer
	taken    bool
	index    domain.BookedIndex
	updated  *domain.ComposerPatch
}

func (f *fakeComposerRepo) GetByID(_ context.Context, id string) (*domain.Composer, error) {
	if f.composer == nil || f.composer.ID != id {
		return nil, composerRepo.ErrComposerNotFound
	}
	cp := *f.composer
	return &cp, nil
}

func (f *fakeComposerRepo) Update(_ context.Context, _ string, patch *domain.ComposerPatch) error {
	f.updated = patch
	patch.Apply(f.composer)
	return nil
}

func (f *fakeComposerRepo) GetBookedIndex(_ context.Context, _, _ string) (domain.BookedIndex, error) {
	if f.index == nil {
		return domain.NewBookedIndex(), nil
	}
	return f.index, nil
}

func (f *fakeComposerRepo) IsSlotTaken(_ context.Context, _, _, _ string) (bool, error) {
	return f.taken, nil
}

type fakePricingRepo struct{}

func (fakePricingRepo) GetOrDefault(_ context.Context, et domain.EventType) (*domain.PricingConfig, error) {
	return domain.DefaultPricingConfig(et), nil
}

type fakeGateway struct {
	configured bool
	err        error
	amount     int64
	calls      int
}

func (f *fakeGateway) Configured() bool { return f.configured }

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, ref string, amount int64) (*paymentgateway.CheckoutSession, error) {
	f.calls++
	f.amount = amount
	if f.err != nil {
		return nil, f.err
	}
	return &paymentgateway.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1?ref=" + ref}, nil
}

type fakeTx struct{}

func (fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	sessions  []string
	conflicts []string
}

func (m *fakeMetrics) IncPaymentSession(et string) { m.sessions = append(m.sessions, et) }
func (m *fakeMetrics) IncSlotConflict(s string)    { m.conflicts = append(m.conflicts, s) }

type fixedTime struct{}

func (fixedTime) Now() time.Time { return now }

func readyComposer() *domain.Composer {
	return &domain.Composer{
		ID:                composerID,
		UserID:            ptr.Ptr(int64(7)),
		EventType:         domain.EventModestWedding,
		PreferredDate:     ptr.Ptr("2027-01-09"),
		TimeSlot:          ptr.Ptr(domain.SlotEvening),
		ExtraTimeAddon:    true,
		ByobBarAddon:      true,
		PhotoBookQuantity: 1,
		PaymentMethod:     ptr.Ptr(domain.PaymentACH),
		PaymentStatus:     domain.PaymentStatusPending,
	}
}

type fixture struct {
	uc      *UseCase
	repo    *fakeComposerRepo
	gateway *fakeGateway
	metrics *fakeMetrics
}

func newFixture(c *domain.Composer) *fixture {
	f := &fixture{
		repo:    &fakeComposerRepo{composer: c},
		gateway: &fakeGateway{configured: true},
		metrics: &fakeMetrics{},
	}
	f.uc = NewUseCase(f.repo, fakePricingRepo{}, f.gateway, fakeTx{}, f.metrics, time.UTC, logger.NewNop())
	f.uc.timeProvider = fixedTime{}
	return f
}

func TestExecute_LocksPriceAndCreatesSession(t *testing.T) {
	f := newFixture(readyComposer())

	resp, err := f.uc.Execute(context.Background(), &Request{ComposerID: composerID, RequesterID: ptr.Ptr(int64(7))})
	require.NoError(t, err)

	assert.Equal(t, "payment_initiated", resp.PaymentStatus)
	assert.Equal(t, "cs_1", resp.SessionID)
	assert.Equal(t, int64(585000), resp.TotalPrice)
	assert.Equal(t, int64(585000), f.gateway.amount)

	stored := f.repo.composer
	assert.Equal(t, domain.PaymentStatusInitiated, stored.PaymentStatus)
	assert.Equal(t, "cs_1", *stored.PaymentSessionID)
	assert.Equal(t, now, *stored.PaymentInitiatedAt)
	assert.Equal(t, int64(585000), stored.TotalPrice)
	assert.Equal(t, []string{"modest-wedding"}, f.metrics.sessions)
}

func TestExecute_ResubmitKeepsLockedPrice(t *testing.T) {
	c := readyComposer()
	c.PaymentStatus = domain.PaymentStatusInitiated
	c.TotalPrice = 500000
	f := newFixture(c)

	resp, err := f.uc.Execute(context.Background(), &Request{ComposerID: composerID})
	require.NoError(t, err)

	assert.Equal(t, int64(500000), resp.TotalPrice)
	assert.Equal(t, int64(500000), f.gateway.amount)
	assert.Nil(t, f.repo.updated.TotalPrice)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture(readyComposer())
	f.repo.taken = true

	_, err := f.uc.Execute(context.Background(), &Request{ComposerID: composerID})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, []string{"submit"}, f.metrics.conflicts)
	assert.Zero(t, f.gateway.calls)
	assert.Equal(t, domain.PaymentStatusPending, f.repo.composer.PaymentStatus)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.Composer)
		req    *Request
		want   error
	}{
		{"already paid", func(c *domain.Composer) { c.PaymentStatus = domain.PaymentStatusCompleted }, nil, ErrAlreadyPaid},
		{"missing slot", func(c *domain.Composer) { c.TimeSlot = nil }, nil, ErrIncomplete},
		{"missing event type", func(c *domain.Composer) { c.EventType = "" }, nil, ErrIncomplete},
		{"slot not offered", func(c *domain.Composer) { c.TimeSlot = ptr.Ptr(domain.SlotNoon) }, nil, ErrIncomplete},
		{"extra time on afternoon slot", func(c *domain.Composer) { c.TimeSlot = ptr.Ptr(domain.SlotAfternoon) }, nil, ErrExtraTimeNotEligible},
		{"inside lead time", func(c *domain.Composer) {
			c.PreferredDate = ptr.Ptr("2026-10-24")
			c.ExtraTimeAddon = true
		}, nil, ErrDateNotSelectable},
		{"other owner", func(*domain.Composer) {}, &Request{ComposerID: composerID, RequesterID: ptr.Ptr(int64(8))}, ErrAccessDenied},
		{"unknown id", func(*domain.Composer) {}, &Request{ComposerID: "6f1b1d4e-0000-4000-8000-000000000000"}, ErrComposerNotFound},
		{"malformed id", func(*domain.Composer) {}, &Request{ComposerID: "42"}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := readyComposer()
			tt.mutate(c)
			f := newFixture(c)

			req := tt.req
			if req == nil {
				req = &Request{ComposerID: composerID}
			}

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, f.gateway.calls)
			assert.Nil(t, f.repo.updated)
		})
	}
}

func TestExecute_Gateway(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		f := newFixture(readyComposer())
		f.gateway.configured = false

		_, err := f.uc.Execute(context.Background(), &Request{ComposerID: composerID})
		assert.ErrorIs(t, err, ErrPaymentUnavailable)
	})

	t.Run("rejected", func(t *testing.T) {
		f := newFixture(readyComposer())
		f.gateway.err = paymentgateway.ErrRejected

		_, err := f.uc.Execute(context.Background(), &Request{ComposerID: composerID})
		assert.ErrorIs(t, err, ErrPaymentFailed)
		assert.Nil(t, f.repo.updated)
		assert.Empty(t, f.metrics.sessions)
	})

	t.Run("transport failure", func(t *testing.T) {
		f := newFixture(readyComposer())
		f.gateway.err = errors.New("connection refused")

		_, err := f.uc.Execute(context.Background(), &Request{ComposerID: composerID})
		assert.ErrorIs(t, err, ErrPaymentFailed)
	})
}
