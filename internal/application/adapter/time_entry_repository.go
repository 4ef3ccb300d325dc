// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/domain/entity"
)

// TimeEntryFilter defines filter options for listing time entries.
// Only bounds that the database can apply cheaply live here; keyword search
// and quick filter windows are resolved in the timesheet package.
type TimeEntryFilter struct {
	CollaboratorID *uuid.UUID
	ProjectID      *uuid.UUID
	CategoryID     *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	Unassigned     bool // Only entries without a project
}

// TimeEntryPagination defines pagination options.
type TimeEntryPagination struct {
	Page  int
	Limit int
}

// TimeEntryRepository defines the interface for time entry persistence operations.
type TimeEntryRepository interface {
	// Create creates a new time entry in the database.
	Create(ctx context.Context, entry *entity.TimeEntry) error

	// BulkCreate creates multiple time entries in a single operation.
	BulkCreate(ctx context.Context, entries []*entity.TimeEntry) error

	// FindByID retrieves a time entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error)

	// FindByIDWithRelations retrieves a time entry with its project, category
	// and collaborator by ID.
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.TimeEntryWithRelations, error)

	// FindByFilter retrieves time entries based on filter criteria with pagination.
	// Entries are ordered by date descending, then by creation time.
	FindByFilter(ctx context.Context, filter TimeEntryFilter, pagination TimeEntryPagination) (*entity.TimeEntryListResult, error)

	// FindAllByFilter retrieves all time entries matching the filter without pagination.
	// Used by reports and exports that aggregate the full result set.
	FindAllByFilter(ctx context.Context, filter TimeEntryFilter) ([]*entity.TimeEntryWithRelations, error)

	// FindByIDs retrieves time entries for the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.TimeEntry, error)

	// Update updates an existing time entry in the database.
	Update(ctx context.Context, entry *entity.TimeEntry) error

	// BulkAssignProject sets the project (and optionally category) for multiple entries.
	// Returns the count of updated entries.
	BulkAssignProject(ctx context.Context, ids []uuid.UUID, projectID uuid.UUID, categoryID *uuid.UUID) (int64, error)

	// Delete soft-deletes a time entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
