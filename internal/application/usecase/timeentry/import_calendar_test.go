// Package timeentry contains time entry use cases.
package timeentry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/domain/timesheet"
)

func TestImportCalendarUseCase_Execute(t *testing.T) {
	collaboratorID := uuid.New()
	rangeStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("imports events inside the range as unassigned entries", func(t *testing.T) {
		repo := &stubEntryRepo{}
		uc := NewImportCalendarUseCase(repo)

		output, err := uc.Execute(context.Background(), ImportCalendarInput{
			CollaboratorID: collaboratorID,
			RangeStart:     rangeStart,
			RangeEnd:       rangeEnd,
			Events: []timesheet.Event{
				{
					UID:      "evt-1",
					Summary:  "Sprint planning",
					Location: "Room 2",
					Start:    time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
					End:      time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC),
				},
				{
					UID:     "evt-2",
					Summary: "Offsite",
					Start:   time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
					End:     time.Date(2025, 4, 1, 17, 0, 0, 0, time.UTC),
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Created) != 1 {
			t.Fatalf("expected 1 created entry, got %d", len(output.Created))
		}
		if output.Skipped != 0 {
			t.Errorf("expected 0 skipped, got %d", output.Skipped)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected 1 persisted entry, got %d", len(repo.created))
		}

		entry := repo.created[0]
		if entry.CollaboratorID != collaboratorID {
			t.Errorf("expected collaborator %s, got %s", collaboratorID, entry.CollaboratorID)
		}
		if entry.ProjectID != nil || entry.CategoryID != nil {
			t.Error("expected imported entries to be unassigned")
		}
		if entry.Comment != "Sprint planning - Room 2" {
			t.Errorf("expected comment with location suffix, got %q", entry.Comment)
		}
		if !entry.DurationHours.Equal(decimal.NewFromFloat(1.5)) {
			t.Errorf("expected 1.5 hours, got %s", entry.DurationHours)
		}
		wantDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		if !entry.Date.Equal(wantDate) {
			t.Errorf("expected date %v, got %v", wantDate, entry.Date)
		}
	})

	t.Run("zero duration events count as skipped", func(t *testing.T) {
		repo := &stubEntryRepo{}
		uc := NewImportCalendarUseCase(repo)

		output, err := uc.Execute(context.Background(), ImportCalendarInput{
			CollaboratorID: collaboratorID,
			RangeStart:     rangeStart,
			RangeEnd:       rangeEnd,
			Events: []timesheet.Event{
				{
					UID:     "evt-1",
					Summary: "All-day marker",
					Start:   time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
					End:     time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Created) != 0 {
			t.Errorf("expected 0 created entries, got %d", len(output.Created))
		}
		if output.Skipped != 1 {
			t.Errorf("expected 1 skipped, got %d", output.Skipped)
		}
		if len(repo.created) != 0 {
			t.Errorf("expected no persisted entries, got %d", len(repo.created))
		}
	})

	t.Run("negative duration events count as skipped", func(t *testing.T) {
		repo := &stubEntryRepo{}
		uc := NewImportCalendarUseCase(repo)

		output, err := uc.Execute(context.Background(), ImportCalendarInput{
			CollaboratorID: collaboratorID,
			RangeStart:     rangeStart,
			RangeEnd:       rangeEnd,
			Events: []timesheet.Event{
				{
					UID:           "evt-1",
					Summary:       "Cancelled sync",
					Start:         time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
					DurationHours: decimal.NewFromInt(-2),
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Created) != 0 {
			t.Errorf("expected 0 created entries, got %d", len(output.Created))
		}
		if output.Skipped != 1 {
			t.Errorf("expected 1 skipped, got %d", output.Skipped)
		}
		if len(repo.created) != 0 {
			t.Errorf("expected no persisted entries, got %d", len(repo.created))
		}
	})

	t.Run("explicit duration wins over the event span", func(t *testing.T) {
		repo := &stubEntryRepo{}
		uc := NewImportCalendarUseCase(repo)

		output, err := uc.Execute(context.Background(), ImportCalendarInput{
			CollaboratorID: collaboratorID,
			RangeStart:     rangeStart,
			RangeEnd:       rangeEnd,
			Events: []timesheet.Event{
				{
					UID:           "evt-1",
					Summary:       "Focus block",
					Start:         time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
					End:           time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC),
					DurationHours: decimal.NewFromInt(3),
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Created) != 1 {
			t.Fatalf("expected 1 created entry, got %d", len(output.Created))
		}
		if !output.Created[0].DurationHours.Equal(decimal.NewFromInt(3)) {
			t.Errorf("expected explicit 3 hours, got %s", output.Created[0].DurationHours)
		}
	})

	t.Run("no events in range is an error", func(t *testing.T) {
		repo := &stubEntryRepo{}
		uc := NewImportCalendarUseCase(repo)

		_, err := uc.Execute(context.Background(), ImportCalendarInput{
			CollaboratorID: collaboratorID,
			RangeStart:     rangeStart,
			RangeEnd:       rangeEnd,
			Events: []timesheet.Event{
				{
					UID:     "evt-1",
					Summary: "Offsite",
					Start:   time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
					End:     time.Date(2025, 4, 1, 17, 0, 0, 0, time.UTC),
				},
			},
		})
		if err == nil {
			t.Fatal("expected error when no events fall in the range")
		}

		var teErr *domainerror.TimeEntryError
		if !errors.As(err, &teErr) {
			t.Fatalf("expected TimeEntryError, got %T", err)
		}
		if teErr.Code != domainerror.ErrCodeNoEventsToImport {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNoEventsToImport, teErr.Code)
		}
	})

	t.Run("bulk create failures surface", func(t *testing.T) {
		repo := &stubEntryRepo{bulkErr: errors.New("db down")}
		uc := NewImportCalendarUseCase(repo)

		_, err := uc.Execute(context.Background(), ImportCalendarInput{
			CollaboratorID: collaboratorID,
			RangeStart:     rangeStart,
			RangeEnd:       rangeEnd,
			Events: []timesheet.Event{
				{
					UID:     "evt-1",
					Summary: "Sprint planning",
					Start:   time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
					End:     time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
				},
			},
		})
		if err == nil {
			t.Fatal("expected error when bulk create fails")
		}
	})
}
