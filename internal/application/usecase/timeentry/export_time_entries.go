// Package timeentry contains time entry use cases.
package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/time-tracker/backend/internal/application/adapter"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/domain/timesheet"
)

// ExportTimeEntriesInput represents the input for exporting time entries.
type ExportTimeEntriesInput struct {
	Criteria      timesheet.Criteria
	ReferenceDate time.Time
}

// ExportTimeEntriesOutput represents the output of exporting time entries.
type ExportTimeEntriesOutput struct {
	Content  string
	Filename string
}

// ExportTimeEntriesUseCase handles CSV export of time entries.
type ExportTimeEntriesUseCase struct {
	entryRepo adapter.TimeEntryRepository
}

// NewExportTimeEntriesUseCase creates a new ExportTimeEntriesUseCase instance.
func NewExportTimeEntriesUseCase(entryRepo adapter.TimeEntryRepository) *ExportTimeEntriesUseCase {
	return &ExportTimeEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute exports the entries matching the criteria as semicolon-delimited
// text. The export sees exactly what a filtered listing would show.
func (uc *ExportTimeEntriesUseCase) Execute(ctx context.Context, input ExportTimeEntriesInput) (*ExportTimeEntriesOutput, error) {
	if !input.Criteria.QuickFilter.Valid() {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeInvalidEntryFilter,
			"unknown quick filter",
			domainerror.ErrInvalidEntryFilter,
		)
	}

	filter := RepositoryFilter(input.Criteria, input.ReferenceDate)

	entries, err := uc.entryRepo.FindAllByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time entries: %w", err)
	}

	records := timesheet.Apply(timesheet.RecordsFromEntries(entries), input.Criteria, input.ReferenceDate)

	content := timesheet.ToDelimitedText(records, timesheet.DefaultColumns(), timesheet.QuoteOnDelimiter)

	return &ExportTimeEntriesOutput{
		Content:  content,
		Filename: timesheet.ExportFilename("time_entries", input.ReferenceDate),
	}, nil
}
