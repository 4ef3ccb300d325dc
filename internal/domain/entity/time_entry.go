// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimeEntry represents one logged unit of work. Project and category are
// optional: entries may sit unassigned until a collaborator or an admin
// categorizes them.
type TimeEntry struct {
	ID             uuid.UUID
	CollaboratorID uuid.UUID
	ProjectID      *uuid.UUID
	CategoryID     *uuid.UUID
	Date           time.Time       // Day granularity; time-of-day is ignored
	DurationHours  decimal.Decimal // Fractional hours, e.g. 1.5 = 1h30m
	Comment        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewTimeEntry creates a new TimeEntry entity.
func NewTimeEntry(
	collaboratorID uuid.UUID,
	projectID, categoryID *uuid.UUID,
	date time.Time,
	durationHours decimal.Decimal,
	comment string,
	now time.Time,
) *TimeEntry {
	return &TimeEntry{
		ID:             uuid.New(),
		CollaboratorID: collaboratorID,
		ProjectID:      projectID,
		CategoryID:     categoryID,
		Date:           date,
		DurationHours:  durationHours,
		Comment:        comment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// TimeEntryWithRelations represents a time entry joined with its optional
// project, category, and collaborator records. Any of the joined fields may
// be nil; consumers fall back to placeholder labels.
type TimeEntryWithRelations struct {
	Entry        *TimeEntry
	Project      *Project
	Category     *Category
	Collaborator *Collaborator
}

// TimeEntryListResult represents the result of listing time entries.
type TimeEntryListResult struct {
	Entries    []*TimeEntryWithRelations
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
