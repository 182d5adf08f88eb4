package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/wedding-composer/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string          `json:"date"`
	EventType  string          `json:"eventType"`
	Selectable bool            `json:"selectable"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot слот с признаком занятости
type AvailableSlot struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	ArrivalNote string `json:"arrivalNote"`
	Booked      bool   `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Value:       slot.Value,
			Label:       slot.Label,
			ArrivalNote: slot.ArrivalNote,
			Booked:      slot.Booked,
		}
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date,
		EventType:  resp.EventType,
		Selectable: resp.Selectable,
		Slots:      slots,
	}
}
