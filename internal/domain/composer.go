package domain

import "time"

// Composer one booking in progress or completed: everything the customer
// chose in the wizard plus the price locked in at submission.
type Composer struct {
	ID     string
	UserID *int64

	EventType     EventType
	PreferredDate *string // YYYY-MM-DD, cleared whenever EventType changes
	TimeSlot      *string

	// Contact
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	PartnerOne   *string
	PartnerTwo   *string
	GuestCount   *int

	// Ceremony
	CeremonyMusic      *string
	ProcessionalSong   *string
	RecessionalSong    *string
	CeremonyScript     *string
	VowsType           *string
	PhotographyPackage *string

	// Add-ons
	PhotoBookAddon    bool
	PhotoBookQuantity int
	ExtraTimeAddon    bool
	ByobBarAddon      bool
	RehearsalAddon    bool

	// Payment, cents
	PaymentMethod        *PaymentMethod
	BasePackagePrice     int64
	ACHDiscountAmount    int64
	AffirmDiscountAmount int64
	AmountPaid           int64
	TotalPrice           int64
	PaymentStatus        PaymentStatus
	PaymentSessionID     *string

	CurrentStep int
	Notes       *string

	PaymentInitiatedAt *time.Time
	CompletedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsEditable returns true while the price is not locked in
func (c *Composer) IsEditable() bool {
	return c.PaymentStatus == PaymentStatusPending
}

// IsCompleted returns true once payment is confirmed
func (c *Composer) IsCompleted() bool {
	return c.PaymentStatus == PaymentStatusCompleted
}

// HasDateTime returns true when both date and slot are chosen
func (c *Composer) HasDateTime() bool {
	return c.PreferredDate != nil && *c.PreferredDate != "" &&
		c.TimeSlot != nil && *c.TimeSlot != ""
}

// Date preferred date or empty string
func (c *Composer) Date() string {
	if c.PreferredDate == nil {
		return ""
	}
	return *c.PreferredDate
}

// Slot time slot or empty string
func (c *Composer) Slot() string {
	if c.TimeSlot == nil {
		return ""
	}
	return *c.TimeSlot
}

// Method payment method or empty
func (c *Composer) Method() PaymentMethod {
	if c.PaymentMethod == nil {
		return ""
	}
	return *c.PaymentMethod
}

// Addons add-on selections of the composer
func (c *Composer) Addons() AddonSelections {
	return AddonSelections{
		PhotoBook:         c.PhotoBookAddon,
		PhotoBookQuantity: c.PhotoBookQuantity,
		ExtraTime:         c.ExtraTimeAddon,
		ByobBar:           c.ByobBarAddon,
		Rehearsal:         c.RehearsalAddon,
	}
}

// Reprice recomputes every price field from the current selections.
// Discount amounts are stored per method so the wizard can show both options.
func (c *Composer) Reprice(prices *PricingConfig) PriceBreakdown {
	q := Quote(c.EventType, c.Date(), c.Addons(), c.Method(), prices, c.AmountPaid)

	c.BasePackagePrice = q.BasePrice
	c.ACHDiscountAmount = 0
	c.AffirmDiscountAmount = 0
	switch c.Method() {
	case PaymentACH, PaymentECheck:
		c.ACHDiscountAmount = q.Discount
	case PaymentAffirm:
		c.AffirmDiscountAmount = q.Discount
	}
	c.TotalPrice = q.TotalPrice

	return q
}

// Discount payment-method discount currently applied
func (c *Composer) Discount() int64 {
	return c.ACHDiscountAmount + c.AffirmDiscountAmount
}

// BalanceDue remaining amount for the stored price
func (c *Composer) BalanceDue() int64 {
	return BalanceDue(c.TotalPrice, c.AmountPaid)
}

// ComposerPatch partial update of a composer; nil fields are left untouched.
// Clear* flags explicitly null a nullable column.
type ComposerPatch struct {
	EventType     *EventType
	PreferredDate *string
	TimeSlot      *string
	ClearDateTime bool

	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	PartnerOne   *string
	PartnerTwo   *string
	GuestCount   *int

	CeremonyMusic      *string
	ProcessionalSong   *string
	RecessionalSong    *string
	CeremonyScript     *string
	VowsType           *string
	PhotographyPackage *string

	PhotoBookAddon    *bool
	PhotoBookQuantity *int
	ExtraTimeAddon    *bool
	ByobBarAddon      *bool
	RehearsalAddon    *bool

	PaymentMethod        *PaymentMethod
	BasePackagePrice     *int64
	ACHDiscountAmount    *int64
	AffirmDiscountAmount *int64
	AmountPaid           *int64
	TotalPrice           *int64
	PaymentStatus        *PaymentStatus
	PaymentSessionID     *string

	CurrentStep *int
	Notes       *string

	PaymentInitiatedAt *time.Time
	CompletedAt        *time.Time
}

// Apply copies the non-nil fields of the patch onto c
func (p *ComposerPatch) Apply(c *Composer) {
	if p.EventType != nil {
		c.EventType = *p.EventType
	}
	if p.ClearDateTime {
		c.PreferredDate = nil
		c.TimeSlot = nil
	}
	if p.PreferredDate != nil {
		c.PreferredDate = p.PreferredDate
	}
	if p.TimeSlot != nil {
		c.TimeSlot = p.TimeSlot
	}
	setString(&c.ContactName, p.ContactName)
	setString(&c.ContactEmail, p.ContactEmail)
	setString(&c.ContactPhone, p.ContactPhone)
	setString(&c.PartnerOne, p.PartnerOne)
	setString(&c.PartnerTwo, p.PartnerTwo)
	if p.GuestCount != nil {
		c.GuestCount = p.GuestCount
	}
	setString(&c.CeremonyMusic, p.CeremonyMusic)
	setString(&c.ProcessionalSong, p.ProcessionalSong)
	setString(&c.RecessionalSong, p.RecessionalSong)
	setString(&c.CeremonyScript, p.CeremonyScript)
	setString(&c.VowsType, p.VowsType)
	setString(&c.PhotographyPackage, p.PhotographyPackage)
	if p.PhotoBookAddon != nil {
		c.PhotoBookAddon = *p.PhotoBookAddon
	}
	if p.PhotoBookQuantity != nil {
		c.PhotoBookQuantity = *p.PhotoBookQuantity
	}
	if p.ExtraTimeAddon != nil {
		c.ExtraTimeAddon = *p.ExtraTimeAddon
	}
	if p.ByobBarAddon != nil {
		c.ByobBarAddon = *p.ByobBarAddon
	}
	if p.RehearsalAddon != nil {
		c.RehearsalAddon = *p.RehearsalAddon
	}
	if p.PaymentMethod != nil {
		c.PaymentMethod = p.PaymentMethod
	}
	if p.BasePackagePrice != nil {
		c.BasePackagePrice = *p.BasePackagePrice
	}
	if p.ACHDiscountAmount != nil {
		c.ACHDiscountAmount = *p.ACHDiscountAmount
	}
	if p.AffirmDiscountAmount != nil {
		c.AffirmDiscountAmount = *p.AffirmDiscountAmount
	}
	if p.AmountPaid != nil {
		c.AmountPaid = *p.AmountPaid
	}
	if p.TotalPrice != nil {
		c.TotalPrice = *p.TotalPrice
	}
	if p.PaymentStatus != nil {
		c.PaymentStatus = *p.PaymentStatus
	}
	setString(&c.PaymentSessionID, p.PaymentSessionID)
	if p.CurrentStep != nil {
		c.CurrentStep = *p.CurrentStep
	}
	setString(&c.Notes, p.Notes)
	if p.PaymentInitiatedAt != nil {
		c.PaymentInitiatedAt = p.PaymentInitiatedAt
	}
	if p.CompletedAt != nil {
		c.CompletedAt = p.CompletedAt
	}
}

// PriceFields patch that stores the price fields of c
func PriceFields(c *Composer) ComposerPatch {
	base := c.BasePackagePrice
	ach := c.ACHDiscountAmount
	affirm := c.AffirmDiscountAmount
	total := c.TotalPrice
	return ComposerPatch{
		BasePackagePrice:     &base,
		ACHDiscountAmount:    &ach,
		AffirmDiscountAmount: &affirm,
		TotalPrice:           &total,
	}
}

func setString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}
