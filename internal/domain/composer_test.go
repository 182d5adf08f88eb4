package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/wedding-composer/pkg/ptr"
)

func TestComposer_Reprice(t *testing.T) {
	method := PaymentACH
	c := &Composer{
		EventType:      EventModestWedding,
		PreferredDate:  ptr.Ptr("2027-01-09"),
		TimeSlot:       ptr.Ptr(SlotEvening),
		ExtraTimeAddon: true,
		ByobBarAddon:   true,
		PaymentMethod:  &method,
		PaymentStatus:  PaymentStatusPending,
	}

	q := c.Reprice(DefaultPricingConfig(EventModestWedding))

	assert.Equal(t, int64(585000), q.TotalPrice)
	assert.Equal(t, int64(585000), c.TotalPrice)
	assert.Equal(t, int64(450000), c.BasePackagePrice)
	assert.Equal(t, int64(5000), c.ACHDiscountAmount)
	assert.Zero(t, c.AffirmDiscountAmount)
	assert.Equal(t, int64(5000), c.Discount())
	assert.Equal(t, int64(585000), c.BalanceDue())

	affirm := PaymentAffirm
	c.PaymentMethod = &affirm
	c.Reprice(DefaultPricingConfig(EventModestWedding))
	assert.Zero(t, c.ACHDiscountAmount)
	assert.Equal(t, int64(5000), c.AffirmDiscountAmount)
}

func TestComposer_State(t *testing.T) {
	c := &Composer{PaymentStatus: PaymentStatusPending}
	assert.True(t, c.IsEditable())
	assert.False(t, c.IsCompleted())
	assert.False(t, c.HasDateTime())
	assert.Empty(t, c.Date())
	assert.Empty(t, c.Slot())
	assert.Empty(t, c.Method())

	c.PreferredDate = ptr.Ptr("2027-01-09")
	c.TimeSlot = ptr.Ptr("")
	assert.False(t, c.HasDateTime())

	c.TimeSlot = ptr.Ptr(SlotMidday)
	assert.True(t, c.HasDateTime())

	c.PaymentStatus = PaymentStatusInitiated
	assert.False(t, c.IsEditable())

	c.PaymentStatus = PaymentStatusCompleted
	assert.True(t, c.IsCompleted())
}

func TestComposerPatch_Apply(t *testing.T) {
	c := &Composer{
		EventType:     EventModestWedding,
		PreferredDate: ptr.Ptr("2027-01-09"),
		TimeSlot:      ptr.Ptr(SlotEvening),
		ContactName:   ptr.Ptr("Ann"),
		Notes:         ptr.Ptr("keep"),
	}

	et := EventVowRenewal
	patch := ComposerPatch{
		EventType:      &et,
		ClearDateTime:  true,
		ContactEmail:   ptr.Ptr("ann@example.com"),
		GuestCount:     ptr.Ptr(40),
		PhotoBookAddon: ptr.Ptr(true),
		CurrentStep:    ptr.Ptr(3),
	}
	patch.Apply(c)

	assert.Equal(t, EventVowRenewal, c.EventType)
	assert.Nil(t, c.PreferredDate)
	assert.Nil(t, c.TimeSlot)
	assert.Equal(t, "Ann", *c.ContactName)
	assert.Equal(t, "ann@example.com", *c.ContactEmail)
	assert.Equal(t, 40, *c.GuestCount)
	assert.True(t, c.PhotoBookAddon)
	assert.Equal(t, 3, c.CurrentStep)
	assert.Equal(t, "keep", *c.Notes)
}

func TestComposerPatch_ClearThenSet(t *testing.T) {
	c := &Composer{PreferredDate: ptr.Ptr("2027-01-09"), TimeSlot: ptr.Ptr(SlotEvening)}

	patch := ComposerPatch{ClearDateTime: true, PreferredDate: ptr.Ptr("2027-01-10")}
	patch.Apply(c)

	assert.Equal(t, "2027-01-10", *c.PreferredDate)
	assert.Nil(t, c.TimeSlot)
}

func TestPriceFields(t *testing.T) {
	c := &Composer{BasePackagePrice: 450000, ACHDiscountAmount: 5000, TotalPrice: 585000}
	p := PriceFields(c)

	assert.Equal(t, int64(450000), *p.BasePackagePrice)
	assert.Equal(t, int64(5000), *p.ACHDiscountAmount)
	assert.Equal(t, int64(0), *p.AffirmDiscountAmount)
	assert.Equal(t, int64(585000), *p.TotalPrice)
	assert.Nil(t, p.EventType)

	c.TotalPrice = 1
	assert.Equal(t, int64(585000), *p.TotalPrice)
}
