package timesheet

import (
	"strings"
	"testing"
	"time"
)

func TestToDelimitedText(t *testing.T) {
	entry := Record{
		ID:               "1",
		Date:             day(2024, 11, 20),
		DurationHours:    hours("1.5"),
		Comment:          "a;b",
		ProjectName:      "Alpha",
		CategoryName:     "Reviews",
		CollaboratorName: "Ada Lovelace",
	}

	t.Run("quote-on-delimiter protects embedded delimiters", func(t *testing.T) {
		out := ToDelimitedText([]Record{entry}, DefaultColumns(), QuoteOnDelimiter)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected header plus one row, got %d lines", len(lines))
		}
		if lines[0] != "Date;Collaborator;Project;Category;Hours;Comment" {
			t.Errorf("unexpected header: %q", lines[0])
		}
		if lines[1] != `20/11/2024;Ada Lovelace;Alpha;Reviews;1,50;"a;b"` {
			t.Errorf("unexpected row: %q", lines[1])
		}
	})

	t.Run("internal quotes are doubled", func(t *testing.T) {
		e := entry
		e.Comment = `said "done"`
		out := ToDelimitedText([]Record{e}, DefaultColumns(), QuoteOnDelimiter)
		if !strings.Contains(out, `"said ""done"""`) {
			t.Errorf("expected doubled quotes, got %q", out)
		}
	})

	t.Run("forced strategy quotes only flagged columns", func(t *testing.T) {
		e := entry
		e.Comment = "plain"
		out := ToDelimitedText([]Record{e}, DefaultColumns(), QuoteForced)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if lines[1] != `20/11/2024;Ada Lovelace;Alpha;Reviews;1,50;"plain"` {
			t.Errorf("unexpected row: %q", lines[1])
		}
	})

	t.Run("empty input still emits the header", func(t *testing.T) {
		out := ToDelimitedText(nil, DefaultColumns(), QuoteOnDelimiter)
		if out != "Date;Collaborator;Project;Category;Hours;Comment\n" {
			t.Errorf("unexpected output: %q", out)
		}
	})

	t.Run("placeholders and missing dates render gracefully", func(t *testing.T) {
		out := ToDelimitedText([]Record{{ID: "x", DurationHours: hours("2")}}, DefaultColumns(), QuoteOnDelimiter)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if lines[1] != ";;No project;No category;2,00;" {
			t.Errorf("unexpected row: %q", lines[1])
		}
	})
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.5", "1,50"},
		{"0", "0,00"},
		{"12.345", "12,35"},
		{"8", "8,00"},
	}
	for _, tt := range tests {
		if got := FormatHours(hours(tt.in)); got != tt.want {
			t.Errorf("FormatHours(%s): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestExportFilename(t *testing.T) {
	got := ExportFilename("timesheet", day(2024, 11, 20))
	if got != "timesheet_2024-11-20.csv" {
		t.Errorf("unexpected filename: %q", got)
	}
}

func TestFormatDate_Zero(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("expected empty string for zero date, got %q", got)
	}
}
