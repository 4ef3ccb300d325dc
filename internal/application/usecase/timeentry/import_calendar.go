// Package timeentry contains time entry use cases.
package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/domain/timesheet"
)

// ImportCalendarInput represents the input for importing calendar events.
type ImportCalendarInput struct {
	CollaboratorID uuid.UUID
	Events         []timesheet.Event
	RangeStart     time.Time
	RangeEnd       time.Time
}

// ImportCalendarOutput represents the output of importing calendar events.
type ImportCalendarOutput struct {
	Created []*entity.TimeEntry
	Skipped int
}

// ImportCalendarUseCase turns calendar events into time entries.
type ImportCalendarUseCase struct {
	entryRepo adapter.TimeEntryRepository
}

// NewImportCalendarUseCase creates a new ImportCalendarUseCase instance.
func NewImportCalendarUseCase(entryRepo adapter.TimeEntryRepository) *ImportCalendarUseCase {
	return &ImportCalendarUseCase{
		entryRepo: entryRepo,
	}
}

// Execute maps the events within the range to entry candidates and stores
// them without a project assignment. Events with no usable duration are
// counted as skipped, never silently dropped.
func (uc *ImportCalendarUseCase) Execute(ctx context.Context, input ImportCalendarInput) (*ImportCalendarOutput, error) {
	inRange := timesheet.EventsInRange(input.Events, input.RangeStart, input.RangeEnd)
	candidates := timesheet.CandidatesFromEvents(inRange)

	if len(inRange) == 0 {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeNoEventsToImport,
			"no events in the given range",
			domainerror.ErrNoEventsToImport,
		)
	}

	now := time.Now().UTC()
	entries := make([]*entity.TimeEntry, 0, len(candidates))
	for _, candidate := range candidates {
		entries = append(entries, entity.NewTimeEntry(
			input.CollaboratorID,
			nil,
			nil,
			candidate.Date,
			candidate.DurationHours,
			candidate.Comment,
			now,
		))
	}

	if len(entries) > 0 {
		if err := uc.entryRepo.BulkCreate(ctx, entries); err != nil {
			return nil, fmt.Errorf("failed to import calendar events: %w", err)
		}
	}

	return &ImportCalendarOutput{
		Created: entries,
		Skipped: len(inRange) - len(entries),
	}, nil
}
