package domain

import (
	"sort"
	"time"
)

// Time slot values as stored in composers.time_slot
const (
	SlotMidday    = "11:00-14:00"
	SlotAfternoon = "14:30-17:30"
	SlotEvening   = "18:00-21:00"

	SlotNoon   = "12:00"
	SlotTwoPM  = "14:00"
	SlotFourPM = "16:00"
	SlotSixPM  = "18:00"
)

// ExtraTimeSlot the only slot after which the venue can be held longer
const ExtraTimeSlot = SlotEvening

// TimeSlot a bookable part of a day
type TimeSlot struct {
	Value       string
	Label       string
	ArrivalNote string
}

var (
	fullWeekendSlots = []TimeSlot{
		{Value: SlotMidday, Label: "11:00 AM - 2:00 PM"},
		{Value: SlotAfternoon, Label: "2:30 PM - 5:30 PM"},
		{Value: SlotEvening, Label: "6:00 PM - 9:00 PM"},
	}
	fullFridaySlots = []TimeSlot{
		{Value: SlotEvening, Label: "6:00 PM - 9:00 PM", ArrivalNote: "Bride arrival 4:30 PM"},
	}
	simplifiedWednesdaySlots = []TimeSlot{
		{Value: SlotNoon, Label: "12:00 PM"},
		{Value: SlotTwoPM, Label: "2:00 PM"},
		{Value: SlotFourPM, Label: "4:00 PM"},
		{Value: SlotSixPM, Label: "6:00 PM"},
	}
	simplifiedFridaySlots = []TimeSlot{
		{Value: SlotNoon, Label: "12:00 PM"},
		{Value: SlotTwoPM, Label: "2:00 PM"},
		{Value: SlotFourPM, Label: "4:00 PM"},
	}
)

// ParseDate parses a YYYY-MM-DD calendar date. Returns false for empty or malformed input.
func ParseDate(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SlotsForWeekday returns the ordered slot list for the weekday and event type group.
// The result is a fresh slice; callers may modify it.
func SlotsForWeekday(weekday time.Weekday, eventType EventType) []TimeSlot {
	var src []TimeSlot

	switch eventType.Group() {
	case GroupFull:
		switch weekday {
		case time.Friday:
			src = fullFridaySlots
		case time.Saturday, time.Sunday:
			src = fullWeekendSlots
		}
	case GroupSimplified:
		switch weekday {
		case time.Wednesday:
			src = simplifiedWednesdaySlots
		case time.Friday:
			src = simplifiedFridaySlots
		}
	}

	out := make([]TimeSlot, len(src))
	copy(out, src)
	return out
}

// GetTimeSlots returns the offerable slots for a date.
// An empty or malformed date, or an unknown event type, yields no slots.
func GetTimeSlots(date string, eventType EventType) []TimeSlot {
	d, ok := ParseDate(date)
	if !ok {
		return []TimeSlot{}
	}
	return SlotsForWeekday(d.Weekday(), eventType)
}

// AllowedWeekdays days of week on which the event type can be held
func AllowedWeekdays(eventType EventType) []time.Weekday {
	switch eventType.Group() {
	case GroupFull:
		return []time.Weekday{time.Friday, time.Saturday, time.Sunday}
	case GroupSimplified:
		return []time.Weekday{time.Wednesday, time.Friday}
	default:
		return nil
	}
}

// IsWeekdayAllowed returns true if the event type can be held on the weekday
func IsWeekdayAllowed(eventType EventType, weekday time.Weekday) bool {
	for _, d := range AllowedWeekdays(eventType) {
		if d == weekday {
			return true
		}
	}
	return false
}

// MinLeadDays minimum number of days between today and the event
func MinLeadDays(eventType EventType) int {
	if eventType.IsSimplified() {
		return MinLeadDaysSimplified
	}
	return MinLeadDaysFull
}

// IsValidSlot returns true if slot is one of GetTimeSlots(date, eventType)
func IsValidSlot(date, slot string, eventType EventType) bool {
	for _, s := range GetTimeSlots(date, eventType) {
		if s.Value == slot {
			return true
		}
	}
	return false
}

// IsExtraTimeEligible Extra Time can only follow the Saturday evening slot of a full event
func IsExtraTimeEligible(eventType EventType, date, slot string) bool {
	if !eventType.IsFull() || slot != ExtraTimeSlot {
		return false
	}
	d, ok := ParseDate(date)
	if !ok {
		return false
	}
	return d.Weekday() == time.Saturday
}

// BookedIndex date -> set of slot values held by completed bookings
type BookedIndex map[string]map[string]struct{}

// NewBookedIndex creates an empty index
func NewBookedIndex() BookedIndex {
	return make(BookedIndex)
}

// Add marks slot as booked on date
func (b BookedIndex) Add(date, slot string) {
	slots, ok := b[date]
	if !ok {
		slots = make(map[string]struct{})
		b[date] = slots
	}
	slots[slot] = struct{}{}
}

// Has returns true if slot is booked on date
func (b BookedIndex) Has(date, slot string) bool {
	slots, ok := b[date]
	if !ok {
		return false
	}
	_, booked := slots[slot]
	return booked
}

// Slots booked slot values for date, sorted
func (b BookedIndex) Slots(date string) []string {
	out := make([]string, 0, len(b[date]))
	for s := range b[date] {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// IsSlotBooked membership test against the booked index
func IsSlotBooked(date, slot string, index BookedIndex) bool {
	if index == nil {
		return false
	}
	return index.Has(date, slot)
}

// IsDateSelectable reports whether a customer may pick the date:
// it is at least MinLeadDays after today, falls on an allowed weekday,
// and still has a slot that no completed booking holds.
func IsDateSelectable(date string, eventType EventType, index BookedIndex, today time.Time) bool {
	if !eventType.IsValid() {
		return false
	}
	d, ok := ParseDate(date)
	if !ok {
		return false
	}

	y, m, day := today.Date()
	earliest := time.Date(y, m, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, MinLeadDays(eventType))
	if d.Before(earliest) {
		return false
	}

	if !IsWeekdayAllowed(eventType, d.Weekday()) {
		return false
	}

	for _, s := range SlotsForWeekday(d.Weekday(), eventType) {
		if !IsSlotBooked(date, s.Value, index) {
			return true
		}
	}
	return false
}
