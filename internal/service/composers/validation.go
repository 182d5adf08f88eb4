package composers

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/wedding-composer/internal/domain"
	"github.com/m04kA/wedding-composer/internal/service/composers/models"
)

const maxTextField = 255

// buildPatch проверяет запрос автосохранения и переводит его в ComposerPatch.
// Смена типа события сбрасывает дату и слот; смена даты сбрасывает слот.
func buildPatch(current *domain.Composer, req *models.UpdateComposerRequest) (*domain.ComposerPatch, error) {
	patch := &domain.ComposerPatch{}

	eventType := current.EventType
	date := current.Date()

	if req.EventType != nil {
		et := domain.EventType(*req.EventType)
		if !et.IsValid() {
			return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, *req.EventType)
		}
		if et != current.EventType {
			patch.EventType = &et
			patch.ClearDateTime = true
			date = ""
		}
		eventType = et
	}

	if req.PreferredDate != nil {
		if *req.PreferredDate == "" {
			patch.ClearDateTime = true
			date = ""
		} else {
			d, ok := domain.ParseDate(*req.PreferredDate)
			if !ok {
				return nil, fmt.Errorf("%w: preferredDate must be YYYY-MM-DD", ErrInvalidInput)
			}
			if !eventType.IsValid() {
				return nil, fmt.Errorf("%w: choose an event type before the date", ErrInvalidInput)
			}
			if !domain.IsWeekdayAllowed(eventType, d.Weekday()) {
				return nil, fmt.Errorf("%w: %s events are not held on %s", ErrInvalidInput, eventType, d.Weekday())
			}
			if *req.PreferredDate != current.Date() {
				// слот относится к прежней дате
				patch.ClearDateTime = true
			}
			date = *req.PreferredDate
			patch.PreferredDate = &date
		}
	}

	if req.TimeSlot != nil {
		if *req.TimeSlot == "" {
			patch.ClearDateTime = true
			if date != "" {
				patch.PreferredDate = &date
			}
		} else {
			if date == "" {
				return nil, fmt.Errorf("%w: timeSlot requires preferredDate", ErrInvalidInput)
			}
			if !domain.IsValidSlot(date, *req.TimeSlot, eventType) {
				return nil, fmt.Errorf("%w: slot %q is not offered on %s", ErrInvalidInput, *req.TimeSlot, date)
			}
			patch.TimeSlot = req.TimeSlot
		}
	}

	for name, v := range map[string]*string{
		"contactName":        req.ContactName,
		"contactEmail":       req.ContactEmail,
		"contactPhone":       req.ContactPhone,
		"partnerOne":         req.PartnerOne,
		"partnerTwo":         req.PartnerTwo,
		"ceremonyMusic":      req.CeremonyMusic,
		"processionalSong":   req.ProcessionalSong,
		"recessionalSong":    req.RecessionalSong,
		"vowsType":           req.VowsType,
		"photographyPackage": req.PhotographyPackage,
	} {
		if err := checkLength(name, v, maxTextField); err != nil {
			return nil, err
		}
	}
	if err := checkLength("ceremonyScript", req.CeremonyScript, domain.MaxScriptLength); err != nil {
		return nil, err
	}
	if err := checkLength("notes", req.Notes, domain.MaxNotesLength); err != nil {
		return nil, err
	}

	patch.ContactName = req.ContactName
	patch.ContactEmail = req.ContactEmail
	patch.ContactPhone = req.ContactPhone
	patch.PartnerOne = req.PartnerOne
	patch.PartnerTwo = req.PartnerTwo
	patch.CeremonyMusic = req.CeremonyMusic
	patch.ProcessionalSong = req.ProcessionalSong
	patch.RecessionalSong = req.RecessionalSong
	patch.CeremonyScript = req.CeremonyScript
	patch.VowsType = req.VowsType
	patch.PhotographyPackage = req.PhotographyPackage
	patch.Notes = req.Notes

	if req.GuestCount != nil {
		if *req.GuestCount < 0 || *req.GuestCount > domain.MaxGuestCount {
			return nil, fmt.Errorf("%w: guestCount must be between 0 and %d", ErrInvalidInput, domain.MaxGuestCount)
		}
		patch.GuestCount = req.GuestCount
	}

	if req.PhotoBookQuantity != nil {
		q := *req.PhotoBookQuantity
		if q < domain.MinPhotoBookQuantity || q > domain.MaxPhotoBookQuantity {
			return nil, fmt.Errorf("%w: photoBookQuantity must be between %d and %d",
				ErrInvalidInput, domain.MinPhotoBookQuantity, domain.MaxPhotoBookQuantity)
		}
		patch.PhotoBookQuantity = req.PhotoBookQuantity
	}
	patch.PhotoBookAddon = req.PhotoBookAddon
	patch.ExtraTimeAddon = req.ExtraTimeAddon
	patch.ByobBarAddon = req.ByobBarAddon
	patch.RehearsalAddon = req.RehearsalAddon

	if req.PaymentMethod != nil {
		method := domain.PaymentMethod(*req.PaymentMethod)
		if !method.IsValid() {
			return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, *req.PaymentMethod)
		}
		patch.PaymentMethod = &method
	}

	if req.CurrentStep != nil {
		if *req.CurrentStep < 0 {
			return nil, fmt.Errorf("%w: currentStep must not be negative", ErrInvalidInput)
		}
		patch.CurrentStep = req.CurrentStep
	}

	return patch, nil
}

func checkLength(field string, v *string, max int) error {
	if v != nil && utf8.RuneCountInString(*v) > max {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, max)
	}
	return nil
}
