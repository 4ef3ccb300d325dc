package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
)

func ratePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAggregateBy(t *testing.T) {
	t.Run("groups by key and sums hours and cost", func(t *testing.T) {
		entries := []Record{
			{ID: "1", ProjectName: "Alpha", DurationHours: hours("2"), HourlyRate: ratePtr("50")},
			{ID: "2", ProjectName: "Beta", DurationHours: hours("1.5"), HourlyRate: ratePtr("40")},
			{ID: "3", ProjectName: "Alpha", DurationHours: hours("1"), HourlyRate: ratePtr("50")},
		}

		groups := AggregateBy(entries, ByProject)
		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}

		if groups[0].Key != "Alpha" {
			t.Errorf("expected Alpha first (3h > 1.5h), got %s", groups[0].Key)
		}
		if !groups[0].TotalHours.Equal(hours("3")) {
			t.Errorf("expected 3 hours for Alpha, got %s", groups[0].TotalHours)
		}
		if !groups[0].TotalCost.Equal(hours("150")) {
			t.Errorf("expected cost 150 for Alpha, got %s", groups[0].TotalCost)
		}
		if groups[0].EntryCount != 2 {
			t.Errorf("expected 2 entries for Alpha, got %d", groups[0].EntryCount)
		}
		if !groups[1].TotalCost.Equal(hours("60")) {
			t.Errorf("expected cost 60 for Beta, got %s", groups[1].TotalCost)
		}
	})

	t.Run("missing project falls back to placeholder", func(t *testing.T) {
		entries := []Record{{ID: "1", DurationHours: hours("1")}}
		groups := AggregateBy(entries, ByProject)
		if groups[0].Key != PlaceholderNoProject {
			t.Errorf("expected %q, got %q", PlaceholderNoProject, groups[0].Key)
		}
	})

	t.Run("missing rate yields zero cost", func(t *testing.T) {
		entries := []Record{
			{ID: "1", CollaboratorName: "Ada", DurationHours: hours("3")},
		}
		groups := AggregateBy(entries, ByCollaborator)
		if !groups[0].TotalHours.Equal(hours("3")) {
			t.Errorf("expected 3 hours, got %s", groups[0].TotalHours)
		}
		if !groups[0].TotalCost.IsZero() {
			t.Errorf("expected zero cost, got %s", groups[0].TotalCost)
		}
	})

	t.Run("collaborator key falls back to email", func(t *testing.T) {
		entries := []Record{
			{ID: "1", CollaboratorEmail: "ada@example.com", DurationHours: hours("1")},
		}
		groups := AggregateBy(entries, ByCollaborator)
		if groups[0].Key != "ada@example.com" {
			t.Errorf("expected email fallback, got %q", groups[0].Key)
		}
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		entries := []Record{
			{ID: "1", CategoryName: "Meetings", DurationHours: hours("2")},
			{ID: "2", CategoryName: "Reviews", DurationHours: hours("2")},
			{ID: "3", CategoryName: "Deploys", DurationHours: hours("5")},
		}
		groups := AggregateBy(entries, ByCategory)
		want := []string{"Deploys", "Meetings", "Reviews"}
		for i, key := range want {
			if groups[i].Key != key {
				t.Errorf("position %d: expected %q, got %q", i, key, groups[i].Key)
			}
		}
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		if groups := AggregateBy(nil, ByProject); len(groups) != 0 {
			t.Errorf("expected no groups, got %d", len(groups))
		}
	})
}

func TestSummarize_MatchesRawTotals(t *testing.T) {
	entries := []Record{
		{ID: "1", ProjectName: "Alpha", DurationHours: hours("2.25"), HourlyRate: ratePtr("80")},
		{ID: "2", ProjectName: "Beta", DurationHours: hours("0.5")},
		{ID: "3", DurationHours: hours("1.75"), HourlyRate: ratePtr("65.50")},
		{ID: "4", ProjectName: "Alpha", DurationHours: hours("0")},
	}

	fromGroups := Summarize(AggregateBy(entries, ByProject))
	fromRecords := SummarizeRecords(entries)

	if !fromGroups.TotalHours.Equal(fromRecords.TotalHours) {
		t.Errorf("hours mismatch: groups %s, records %s", fromGroups.TotalHours, fromRecords.TotalHours)
	}
	if !fromGroups.TotalCost.Equal(fromRecords.TotalCost) {
		t.Errorf("cost mismatch: groups %s, records %s", fromGroups.TotalCost, fromRecords.TotalCost)
	}
	if fromGroups.EntryCount != fromRecords.EntryCount {
		t.Errorf("count mismatch: groups %d, records %d", fromGroups.EntryCount, fromRecords.EntryCount)
	}
	if !fromRecords.TotalHours.Equal(hours("4.5")) {
		t.Errorf("expected 4.5 total hours, got %s", fromRecords.TotalHours)
	}
}

func TestPercentage(t *testing.T) {
	t.Run("computes share of total", func(t *testing.T) {
		if got := Percentage(hours("3"), hours("12")); got != 25 {
			t.Errorf("expected 25, got %v", got)
		}
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		if got := Percentage(hours("1"), hours("3")); got != 33.33 {
			t.Errorf("expected 33.33, got %v", got)
		}
	})

	t.Run("zero total yields zero, not NaN", func(t *testing.T) {
		if got := Percentage(hours("3"), decimal.Zero); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}
