package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a pre-parsed calendar event handed to the import flow. ICS wire
// parsing happens upstream; this core only windows events by date, computes
// durations, and maps confirmed events to entry candidates.
type Event struct {
	UID           string
	Summary       string
	Location      string
	Start         time.Time
	End           time.Time
	DurationHours decimal.Decimal // Optional; computed from Start/End when zero
}

// Hours returns the event duration in fractional hours, rounded to two
// decimal places. An explicit DurationHours wins over the Start/End span.
func (e Event) Hours() decimal.Decimal {
	if !e.DurationHours.IsZero() {
		return e.DurationHours
	}
	if e.End.Before(e.Start) || e.End.Equal(e.Start) {
		return decimal.Zero
	}
	minutes := e.End.Sub(e.Start).Minutes()
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)).Round(2)
}

// EventsInRange keeps events whose start day falls inside the inclusive
// window, preserving order.
func EventsInRange(events []Event, from, to time.Time) []Event {
	result := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Start.IsZero() {
			continue
		}
		if onOrAfter(e.Start, from) && onOrBefore(e.Start, to) {
			result = append(result, e)
		}
	}
	return result
}

// CandidateFromEvent maps one event to an entry candidate. It reports false
// for events without a positive duration, which import flows count as
// skipped; a negative explicit duration never reaches persistence.
func CandidateFromEvent(e Event) (Record, bool) {
	hours := e.Hours()
	if !hours.IsPositive() {
		return Record{}, false
	}
	comment := e.Summary
	if e.Location != "" {
		comment = e.Summary + " - " + e.Location
	}
	return Record{
		ID:            e.UID,
		Date:          dayOf(e.Start),
		DurationHours: hours,
		Comment:       comment,
	}, true
}

// CandidatesFromEvents maps events to entry candidates, skipping events
// without a positive duration and preserving order.
func CandidatesFromEvents(events []Event) []Record {
	records := make([]Record, 0, len(events))
	for _, e := range events {
		if r, ok := CandidateFromEvent(e); ok {
			records = append(records, r)
		}
	}
	return records
}
