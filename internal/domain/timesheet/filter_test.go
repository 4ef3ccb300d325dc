package timesheet

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func hours(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ids(entries []Record) []string {
	out := make([]string, 0, len(entries))
	for _, r := range entries {
		out = append(out, r.ID)
	}
	return out
}

func TestApply_Search(t *testing.T) {
	entries := []Record{
		{ID: "1", ProjectName: "Alpha", Comment: "kickoff"},
		{ID: "2", ProjectName: "Beta", Comment: "alpha testing"},
		{ID: "3", ProjectName: "Gamma", CategoryName: "Design"},
	}

	t.Run("matches project name and comment case-insensitively", func(t *testing.T) {
		got := Apply(entries, Criteria{Search: "alpha"}, day(2024, 11, 20))
		if want := []string{"1", "2"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("matches category name", func(t *testing.T) {
		got := Apply(entries, Criteria{Search: "design"}, day(2024, 11, 20))
		if want := []string{"3"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("missing comment is treated as empty", func(t *testing.T) {
		got := Apply(entries, Criteria{Search: "nothing-matches"}, day(2024, 11, 20))
		if len(got) != 0 {
			t.Errorf("expected no matches, got %v", ids(got))
		}
	})
}

func TestApply_ExactFilters(t *testing.T) {
	entries := []Record{
		{ID: "1", ProjectID: "p1", CategoryID: "c1", CollaboratorID: "u1"},
		{ID: "2", ProjectID: "p2", CategoryID: "c2", CollaboratorID: "u1"},
		{ID: "3", ProjectID: "p1", CollaboratorID: "u2"},
	}

	t.Run("filters by project id", func(t *testing.T) {
		got := Apply(entries, Criteria{ProjectID: "p1"}, day(2024, 11, 20))
		if want := []string{"1", "3"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("all sentinel disables the filter", func(t *testing.T) {
		got := Apply(entries, Criteria{ProjectID: FilterAll, CollaboratorID: "u1"}, day(2024, 11, 20))
		if want := []string{"1", "2"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("filters compose", func(t *testing.T) {
		got := Apply(entries, Criteria{ProjectID: "p1", CollaboratorID: "u1"}, day(2024, 11, 20))
		if want := []string{"1"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})
}

func TestApply_DateRange(t *testing.T) {
	entries := []Record{
		{ID: "1", Date: day(2024, 11, 10)},
		{ID: "2", Date: day(2024, 11, 15)},
		{ID: "3", Date: day(2024, 11, 20)},
		{ID: "4"}, // missing date
	}

	t.Run("inclusive bounds", func(t *testing.T) {
		c := Criteria{DateRange: DateRange{Start: dayPtr(2024, 11, 10), End: dayPtr(2024, 11, 15)}}
		got := Apply(entries, c, day(2024, 11, 20))
		if want := []string{"1", "2"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("open start bound", func(t *testing.T) {
		c := Criteria{DateRange: DateRange{End: dayPtr(2024, 11, 15)}}
		got := Apply(entries, c, day(2024, 11, 20))
		if want := []string{"1", "2"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("missing date is excluded from any bounded range", func(t *testing.T) {
		c := Criteria{DateRange: DateRange{Start: dayPtr(2000, 1, 1)}}
		got := Apply(entries, c, day(2024, 11, 20))
		for _, id := range ids(got) {
			if id == "4" {
				t.Error("record without date must not match a bounded range")
			}
		}
	})

	t.Run("missing date still matches non-date stages", func(t *testing.T) {
		got := Apply(entries, Criteria{ProjectID: FilterAll}, day(2024, 11, 20))
		if len(got) != 4 {
			t.Errorf("expected all 4 records, got %v", ids(got))
		}
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		late := []Record{{ID: "x", Date: time.Date(2024, 11, 15, 23, 30, 0, 0, time.UTC)}}
		c := Criteria{DateRange: DateRange{Start: dayPtr(2024, 11, 15), End: dayPtr(2024, 11, 15)}}
		if got := Apply(late, c, day(2024, 11, 20)); len(got) != 1 {
			t.Error("entry on the boundary day must match regardless of time of day")
		}
	})
}

func TestApply_QuickFilters(t *testing.T) {
	// 2024-11-20 is a Wednesday.
	reference := day(2024, 11, 20)
	entries := []Record{
		{ID: "prev-mon", Date: day(2024, 11, 11)},
		{ID: "prev-sun", Date: day(2024, 11, 17)},
		{ID: "cur-mon", Date: day(2024, 11, 18)},
		{ID: "cur-sun", Date: day(2024, 11, 24)},
		{ID: "next-mon", Date: day(2024, 11, 25)},
		{ID: "oct", Date: day(2024, 10, 25)},
	}

	t.Run("current week is Monday through Sunday", func(t *testing.T) {
		got := Apply(entries, Criteria{QuickFilter: QuickFilterCurrentWeek}, reference)
		if want := []string{"cur-mon", "cur-sun"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("previous week is the preceding Monday through Sunday", func(t *testing.T) {
		got := Apply(entries, Criteria{QuickFilter: QuickFilterPreviousWeek}, reference)
		if want := []string{"prev-mon", "prev-sun"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("sunday reference belongs to the ending week", func(t *testing.T) {
		// 2024-11-24 is a Sunday; its week is still 18..24.
		got := Apply(entries, Criteria{QuickFilter: QuickFilterCurrentWeek}, day(2024, 11, 24))
		if want := []string{"cur-mon", "cur-sun"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("current month is month to date", func(t *testing.T) {
		got := Apply(entries, Criteria{QuickFilter: QuickFilterCurrentMonth}, reference)
		if want := []string{"prev-mon", "prev-sun", "cur-mon"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("last 30 days", func(t *testing.T) {
		got := Apply(entries, Criteria{QuickFilter: QuickFilterLast30Days}, reference)
		if want := []string{"prev-mon", "prev-sun", "cur-mon", "oct"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("window intersects the explicit range", func(t *testing.T) {
		c := Criteria{
			QuickFilter: QuickFilterCurrentWeek,
			DateRange:   DateRange{End: dayPtr(2024, 11, 20)},
		}
		got := Apply(entries, c, reference)
		if want := []string{"cur-mon"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})
}

func TestApply_Stability(t *testing.T) {
	entries := []Record{
		{ID: "1", Date: day(2024, 11, 18), ProjectName: "Alpha"},
		{ID: "2", Date: day(2024, 11, 19), ProjectName: "Alpha"},
		{ID: "3", Date: day(2024, 11, 20), ProjectName: "Alpha"},
	}
	c := Criteria{Search: "alpha", QuickFilter: QuickFilterCurrentWeek}
	reference := day(2024, 11, 20)

	t.Run("filtering is idempotent", func(t *testing.T) {
		once := Apply(entries, c, reference)
		twice := Apply(once, c, reference)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("expected identical results, got %v then %v", ids(once), ids(twice))
		}
	})

	t.Run("empty criteria return the input unchanged", func(t *testing.T) {
		got := Apply(entries, Criteria{}, reference)
		if !reflect.DeepEqual(got, entries) {
			t.Errorf("expected input unchanged, got %v", ids(got))
		}
	})

	t.Run("custom quick filter applies no window", func(t *testing.T) {
		got := Apply(entries, Criteria{QuickFilter: QuickFilterCustom}, reference)
		if len(got) != len(entries) {
			t.Errorf("expected all records, got %v", ids(got))
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := Apply(nil, c, reference); len(got) != 0 {
			t.Errorf("expected empty result, got %v", ids(got))
		}
	})
}

func TestWindow(t *testing.T) {
	reference := day(2024, 11, 20) // Wednesday

	tests := []struct {
		name  string
		q     QuickFilter
		start time.Time
		end   time.Time
		ok    bool
	}{
		{"current week", QuickFilterCurrentWeek, day(2024, 11, 18), day(2024, 11, 24), true},
		{"previous week", QuickFilterPreviousWeek, day(2024, 11, 11), day(2024, 11, 17), true},
		{"current month", QuickFilterCurrentMonth, day(2024, 11, 1), day(2024, 11, 20), true},
		{"last 30 days", QuickFilterLast30Days, day(2024, 10, 21), day(2024, 11, 20), true},
		{"custom", QuickFilterCustom, time.Time{}, time.Time{}, false},
		{"empty", QuickFilter(""), time.Time{}, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := Window(tt.q, reference)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if !start.Equal(tt.start) || !end.Equal(tt.end) {
				t.Errorf("expected [%s, %s], got [%s, %s]",
					tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"),
					start.Format("2006-01-02"), end.Format("2006-01-02"))
			}
		})
	}

	t.Run("sunday reference starts the week six days earlier", func(t *testing.T) {
		start, end, ok := Window(QuickFilterCurrentWeek, day(2024, 11, 24))
		if !ok || !start.Equal(day(2024, 11, 18)) || !end.Equal(day(2024, 11, 24)) {
			t.Errorf("expected [2024-11-18, 2024-11-24], got [%s, %s]",
				start.Format("2006-01-02"), end.Format("2006-01-02"))
		}
	})
}

func TestQuickFilterValid(t *testing.T) {
	valid := []QuickFilter{"", QuickFilterCustom, QuickFilterCurrentWeek,
		QuickFilterPreviousWeek, QuickFilterCurrentMonth, QuickFilterLast30Days}
	for _, q := range valid {
		if !q.Valid() {
			t.Errorf("Valid() = false for %q", q)
		}
	}
	for _, q := range []QuickFilter{"fortnight", "Current-Week", "last-7-days"} {
		if q.Valid() {
			t.Errorf("Valid() = true for %q", q)
		}
	}
}

func TestCriteriaNormalized(t *testing.T) {
	a := Criteria{
		Search:         "  Alpha ",
		ProjectID:      FilterAll,
		CategoryID:     FilterAll,
		CollaboratorID: FilterAll,
		QuickFilter:    QuickFilterCustom,
	}
	b := Criteria{Search: "alpha"}

	if a.Normalized() != b.Normalized() {
		t.Errorf("expected equal normal forms, got %+v and %+v", a.Normalized(), b.Normalized())
	}

	c := Criteria{ProjectID: "p1", QuickFilter: QuickFilterCurrentWeek}
	if c.Normalized() != c {
		t.Errorf("expected non-sentinel criteria unchanged, got %+v", c.Normalized())
	}
}
