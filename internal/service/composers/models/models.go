package models

import (
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// Request модели

// CreateComposerRequest запрос на создание композера
type CreateComposerRequest struct {
	UserID    *int64
	EventType string
}

// UpdateComposerRequest частичное обновление композера (автосохранение шага мастера).
// Отсутствующее поле не меняется; пустая строка в preferredDate/timeSlot очищает значение.
type UpdateComposerRequest struct {
	EventType     *string `json:"eventType,omitempty" validate:"omitempty,oneof=modest-wedding modest-elopement vow-renewal other"`
	PreferredDate *string `json:"preferredDate,omitempty"`
	TimeSlot      *string `json:"timeSlot,omitempty"`

	ContactName  *string `json:"contactName,omitempty" validate:"omitempty,max=255"`
	ContactEmail *string `json:"contactEmail,omitempty" validate:"omitempty,email,max=255"`
	ContactPhone *string `json:"contactPhone,omitempty" validate:"omitempty,max=50"`
	PartnerOne   *string `json:"partnerOne,omitempty" validate:"omitempty,max=255"`
	PartnerTwo   *string `json:"partnerTwo,omitempty" validate:"omitempty,max=255"`
	GuestCount   *int    `json:"guestCount,omitempty" validate:"omitempty,min=0,max=500"`

	CeremonyMusic      *string `json:"ceremonyMusic,omitempty" validate:"omitempty,max=255"`
	ProcessionalSong   *string `json:"processionalSong,omitempty" validate:"omitempty,max=255"`
	RecessionalSong    *string `json:"recessionalSong,omitempty" validate:"omitempty,max=255"`
	CeremonyScript     *string `json:"ceremonyScript,omitempty"`
	VowsType           *string `json:"vowsType,omitempty" validate:"omitempty,max=64"`
	PhotographyPackage *string `json:"photographyPackage,omitempty" validate:"omitempty,max=64"`

	PhotoBookAddon    *bool `json:"photoBookAddon,omitempty"`
	PhotoBookQuantity *int  `json:"photoBookQuantity,omitempty" validate:"omitempty,min=1,max=10"`
	ExtraTimeAddon    *bool `json:"extraTimeAddon,omitempty"`
	ByobBarAddon      *bool `json:"byobBarAddon,omitempty"`
	RehearsalAddon    *bool `json:"rehearsalAddon,omitempty"`

	PaymentMethod *string `json:"paymentMethod,omitempty" validate:"omitempty,oneof=credit_card affirm ach echeck paypal"`

	CurrentStep *int    `json:"currentStep,omitempty" validate:"omitempty,min=0"`
	Notes       *string `json:"notes,omitempty"`
}

// Response модели

// ComposerResponse ответ с данными композера и рассчитанным остатком
type ComposerResponse struct {
	ID     string `json:"id"`
	UserID *int64 `json:"userId,omitempty"`

	EventType     string  `json:"eventType"`
	PreferredDate *string `json:"preferredDate"`
	TimeSlot      *string `json:"timeSlot"`

	ContactName  *string `json:"contactName,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	PartnerOne   *string `json:"partnerOne,omitempty"`
	PartnerTwo   *string `json:"partnerTwo,omitempty"`
	GuestCount   *int    `json:"guestCount,omitempty"`

	CeremonyMusic      *string `json:"ceremonyMusic,omitempty"`
	ProcessionalSong   *string `json:"processionalSong,omitempty"`
	RecessionalSong    *string `json:"recessionalSong,omitempty"`
	CeremonyScript     *string `json:"ceremonyScript,omitempty"`
	VowsType           *string `json:"vowsType,omitempty"`
	PhotographyPackage *string `json:"photographyPackage,omitempty"`

	PhotoBookAddon    bool `json:"photoBookAddon"`
	PhotoBookQuantity int  `json:"photoBookQuantity"`
	ExtraTimeAddon    bool `json:"extraTimeAddon"`
	ByobBarAddon      bool `json:"byobBarAddon"`
	RehearsalAddon    bool `json:"rehearsalAddon"`

	PaymentMethod        *string `json:"paymentMethod,omitempty"`
	BasePackagePrice     int64   `json:"basePackagePrice"`
	ACHDiscountAmount    int64   `json:"achDiscountAmount"`
	AffirmDiscountAmount int64   `json:"affirmDiscountAmount"`
	AmountPaid           int64   `json:"amountPaid"`
	TotalPrice           int64   `json:"totalPrice"`
	BalanceDue           int64   `json:"balanceDue"`
	PaymentStatus        string  `json:"paymentStatus"`

	CurrentStep int     `json:"currentStep"`
	Notes       *string `json:"notes,omitempty"`

	PaymentInitiatedAt *time.Time `json:"paymentInitiatedAt,omitempty"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ComposerListResponse ответ со списком композеров
type ComposerListResponse struct {
	Composers []ComposerResponse `json:"composers"`
}

// Методы конвертации

// FromDomainComposer конвертирует domain модель в DTO
func FromDomainComposer(c *domain.Composer) *ComposerResponse {
	if c == nil {
		return nil
	}

	resp := &ComposerResponse{
		ID:                   c.ID,
		UserID:               c.UserID,
		EventType:            string(c.EventType),
		PreferredDate:        c.PreferredDate,
		TimeSlot:             c.TimeSlot,
		ContactName:          c.ContactName,
		ContactEmail:         c.ContactEmail,
		ContactPhone:         c.ContactPhone,
		PartnerOne:           c.PartnerOne,
		PartnerTwo:           c.PartnerTwo,
		GuestCount:           c.GuestCount,
		CeremonyMusic:        c.CeremonyMusic,
		ProcessionalSong:     c.ProcessionalSong,
		RecessionalSong:      c.RecessionalSong,
		CeremonyScript:       c.CeremonyScript,
		VowsType:             c.VowsType,
		PhotographyPackage:   c.PhotographyPackage,
		PhotoBookAddon:       c.PhotoBookAddon,
		PhotoBookQuantity:    c.PhotoBookQuantity,
		ExtraTimeAddon:       c.ExtraTimeAddon,
		ByobBarAddon:         c.ByobBarAddon,
		RehearsalAddon:       c.RehearsalAddon,
		BasePackagePrice:     c.BasePackagePrice,
		ACHDiscountAmount:    c.ACHDiscountAmount,
		AffirmDiscountAmount: c.AffirmDiscountAmount,
		AmountPaid:           c.AmountPaid,
		TotalPrice:           c.TotalPrice,
		BalanceDue:           c.BalanceDue(),
		PaymentStatus:        string(c.PaymentStatus),
		CurrentStep:          c.CurrentStep,
		Notes:                c.Notes,
		PaymentInitiatedAt:   c.PaymentInitiatedAt,
		CompletedAt:          c.CompletedAt,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}

	if c.PaymentMethod != nil {
		method := string(*c.PaymentMethod)
		resp.PaymentMethod = &method
	}

	return resp
}

// FromDomainComposerList конвертирует список domain моделей в DTO
func FromDomainComposerList(composers []*domain.Composer) *ComposerListResponse {
	resp := &ComposerListResponse{
		Composers: make([]ComposerResponse, 0, len(composers)),
	}

	for _, c := range composers {
		if r := FromDomainComposer(c); r != nil {
			resp.Composers = append(resp.Composers, *r)
		}
	}

	return resp
}
