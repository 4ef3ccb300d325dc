// Package timeentry contains time entry use cases.
package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/adapter"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/domain/timesheet"
)

const (
	// DefaultPageLimit is applied when no limit is given.
	DefaultPageLimit = 50
	// MaxPageLimit caps the page size.
	MaxPageLimit = 200
)

// ListTimeEntriesInput represents the input for listing time entries.
// Criteria carries the keyword search, exact filters, date range and quick
// filter; database-level bounds are derived from it.
type ListTimeEntriesInput struct {
	Criteria      timesheet.Criteria
	ReferenceDate time.Time
	Page          int
	Limit         int
}

// ListTimeEntriesOutput represents the output of listing time entries.
type ListTimeEntriesOutput struct {
	Entries    []timesheet.Record
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// ListTimeEntriesUseCase handles listing time entries logic.
type ListTimeEntriesUseCase struct {
	entryRepo adapter.TimeEntryRepository
}

// NewListTimeEntriesUseCase creates a new ListTimeEntriesUseCase instance.
func NewListTimeEntriesUseCase(entryRepo adapter.TimeEntryRepository) *ListTimeEntriesUseCase {
	return &ListTimeEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the time entry listing. The repository narrows by the
// exact filters and the resolved date window; keyword search runs in memory
// on the fetched page set so filtering stays consistent with reports.
func (uc *ListTimeEntriesUseCase) Execute(ctx context.Context, input ListTimeEntriesInput) (*ListTimeEntriesOutput, error) {
	if !input.Criteria.QuickFilter.Valid() {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeInvalidEntryFilter,
			"unknown quick filter",
			domainerror.ErrInvalidEntryFilter,
		)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	filter := RepositoryFilter(input.Criteria, input.ReferenceDate)

	entries, err := uc.entryRepo.FindAllByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	records := timesheet.Apply(timesheet.RecordsFromEntries(entries), input.Criteria, input.ReferenceDate)

	total := len(records)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ListTimeEntriesOutput{
		Entries:    records[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// RepositoryFilter derives the database-level filter from criteria. Exact ID
// filters and the resolved date window push down; keyword search does not.
func RepositoryFilter(c timesheet.Criteria, referenceDate time.Time) adapter.TimeEntryFilter {
	filter := adapter.TimeEntryFilter{}

	if id, ok := parsedID(c.CollaboratorID); ok {
		filter.CollaboratorID = id
	}
	if id, ok := parsedID(c.ProjectID); ok {
		filter.ProjectID = id
	}
	if id, ok := parsedID(c.CategoryID); ok {
		filter.CategoryID = id
	}

	if start, end, ok := timesheet.Window(c.QuickFilter, referenceDate); ok {
		filter.StartDate = &start
		filter.EndDate = &end
	} else {
		filter.StartDate = c.DateRange.Start
		filter.EndDate = c.DateRange.End
	}

	return filter
}

func parsedID(raw string) (*uuid.UUID, bool) {
	if raw == "" || raw == timesheet.FilterAll {
		return nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}
