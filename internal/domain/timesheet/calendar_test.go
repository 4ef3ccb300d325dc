package timesheet

import (
	"testing"
	"time"
)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestEventHours(t *testing.T) {
	t.Run("computed from start and end", func(t *testing.T) {
		e := Event{Start: at(2024, 11, 20, 9, 0), End: at(2024, 11, 20, 10, 30)}
		if !e.Hours().Equal(hours("1.5")) {
			t.Errorf("expected 1.5, got %s", e.Hours())
		}
	})

	t.Run("explicit duration wins", func(t *testing.T) {
		e := Event{
			Start:         at(2024, 11, 20, 9, 0),
			End:           at(2024, 11, 20, 17, 0),
			DurationHours: hours("2"),
		}
		if !e.Hours().Equal(hours("2")) {
			t.Errorf("expected 2, got %s", e.Hours())
		}
	})

	t.Run("inverted or zero span yields zero", func(t *testing.T) {
		e := Event{Start: at(2024, 11, 20, 10, 0), End: at(2024, 11, 20, 9, 0)}
		if !e.Hours().IsZero() {
			t.Errorf("expected zero, got %s", e.Hours())
		}
	})

	t.Run("odd durations round to two decimals", func(t *testing.T) {
		e := Event{Start: at(2024, 11, 20, 9, 0), End: at(2024, 11, 20, 9, 50)}
		if !e.Hours().Equal(hours("0.83")) {
			t.Errorf("expected 0.83, got %s", e.Hours())
		}
	})
}

func TestEventsInRange(t *testing.T) {
	events := []Event{
		{UID: "a", Start: at(2024, 11, 17, 9, 0)},
		{UID: "b", Start: at(2024, 11, 18, 9, 0)},
		{UID: "c", Start: at(2024, 11, 24, 23, 0)},
		{UID: "d", Start: at(2024, 11, 25, 0, 0)},
		{UID: "no-start"},
	}

	got := EventsInRange(events, day(2024, 11, 18), day(2024, 11, 24))
	if len(got) != 2 || got[0].UID != "b" || got[1].UID != "c" {
		t.Errorf("expected events b and c, got %+v", got)
	}
}

func TestCandidatesFromEvents(t *testing.T) {
	events := []Event{
		{UID: "a", Summary: "Standup", Start: at(2024, 11, 20, 9, 0), End: at(2024, 11, 20, 9, 30)},
		{UID: "b", Summary: "All day blocker", Start: at(2024, 11, 20, 0, 0), End: at(2024, 11, 20, 0, 0)},
		{UID: "c", Summary: "Review", Location: "Room 2", Start: at(2024, 11, 21, 14, 0), End: at(2024, 11, 21, 15, 0)},
		{UID: "d", Summary: "Cancelled", Start: at(2024, 11, 21, 16, 0), DurationHours: hours("-2")},
	}

	got := CandidatesFromEvents(events)
	if len(got) != 2 {
		t.Fatalf("expected zero and negative duration events skipped, got %d candidates", len(got))
	}
	if got[0].ID != "a" || !got[0].DurationHours.Equal(hours("0.5")) {
		t.Errorf("unexpected first candidate: %+v", got[0])
	}
	if !got[0].Date.Equal(day(2024, 11, 20)) {
		t.Errorf("expected date truncated to day, got %s", got[0].Date)
	}
	if got[1].Comment != "Review - Room 2" {
		t.Errorf("expected location appended to comment, got %q", got[1].Comment)
	}
}
