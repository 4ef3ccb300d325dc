// Package timesheet implements the pure reporting core of the time tracker:
// filtering, aggregation, and delimited-text export over in-memory
// collections of logged work records. Every function here is synchronous and
// deterministic; time-window computations take an explicit reference date
// instead of reading the system clock.
package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/time-tracker/backend/internal/domain/entity"
)

const (
	// PlaceholderNoProject is the display label for entries without a project.
	PlaceholderNoProject = "No project"
	// PlaceholderNoCategory is the display label for entries without a category.
	PlaceholderNoCategory = "No category"
)

// Record is the denormalized view of a time entry that the reporting core
// operates on. It mirrors what the persistence layer returns after joining
// the entry with its optional project, category, and collaborator rows: any
// of the display fields may be empty and the hourly rate may be absent.
//
// A zero Date marks a missing or unparseable date. Such records are excluded
// from every date-bounded stage but still match all other filter stages.
type Record struct {
	ID             string
	Date           time.Time
	CollaboratorID string
	ProjectID      string
	CategoryID     string
	DurationHours  decimal.Decimal
	Comment        string

	ProjectName       string
	CategoryName      string
	CollaboratorName  string
	CollaboratorEmail string
	HourlyRate        *decimal.Decimal
}

// ProjectLabel returns the project name or the no-project placeholder.
func (r Record) ProjectLabel() string {
	if r.ProjectName != "" {
		return r.ProjectName
	}
	return PlaceholderNoProject
}

// CategoryLabel returns the category name or the no-category placeholder.
func (r Record) CategoryLabel() string {
	if r.CategoryName != "" {
		return r.CategoryName
	}
	return PlaceholderNoCategory
}

// CollaboratorLabel returns the collaborator's full name, falling back to
// the email address when no name is set.
func (r Record) CollaboratorLabel() string {
	if r.CollaboratorName != "" {
		return r.CollaboratorName
	}
	return r.CollaboratorEmail
}

// Cost returns the cost derived from the logged hours and the collaborator's
// hourly rate. A missing rate contributes zero cost, never an error.
func (r Record) Cost() decimal.Decimal {
	if r.HourlyRate == nil {
		return decimal.Zero
	}
	return r.DurationHours.Mul(*r.HourlyRate)
}

// KeyFunc extracts a grouping key from a record.
type KeyFunc func(Record) string

// ByProject groups records by project name, with a placeholder for
// unassigned entries.
func ByProject(r Record) string { return r.ProjectLabel() }

// ByCategory groups records by category name, with a placeholder for
// unassigned entries.
func ByCategory(r Record) string { return r.CategoryLabel() }

// ByCollaborator groups records by collaborator display name, falling back
// to the email address.
func ByCollaborator(r Record) string { return r.CollaboratorLabel() }

// RecordFromEntry flattens a joined time entry into a Record.
func RecordFromEntry(e *entity.TimeEntryWithRelations) Record {
	r := Record{
		ID:             e.Entry.ID.String(),
		Date:           e.Entry.Date,
		CollaboratorID: e.Entry.CollaboratorID.String(),
		DurationHours:  e.Entry.DurationHours,
		Comment:        e.Entry.Comment,
	}
	if e.Entry.ProjectID != nil {
		r.ProjectID = e.Entry.ProjectID.String()
	}
	if e.Entry.CategoryID != nil {
		r.CategoryID = e.Entry.CategoryID.String()
	}
	if e.Project != nil {
		r.ProjectName = e.Project.Name
	}
	if e.Category != nil {
		r.CategoryName = e.Category.Name
	}
	if e.Collaborator != nil {
		r.CollaboratorName = e.Collaborator.FullName
		r.CollaboratorEmail = e.Collaborator.Email
		if !e.Collaborator.HourlyRate.IsZero() {
			rate := e.Collaborator.HourlyRate
			r.HourlyRate = &rate
		}
	}
	return r
}

// RecordsFromEntries flattens a list of joined time entries, preserving order.
func RecordsFromEntries(entries []*entity.TimeEntryWithRelations) []Record {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, RecordFromEntry(e))
	}
	return records
}
