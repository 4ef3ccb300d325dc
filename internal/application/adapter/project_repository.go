// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/domain/entity"
)

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	// Create creates a new project in the database.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindAll retrieves all projects, optionally including archived ones.
	FindAll(ctx context.Context, includeArchived bool) ([]*entity.Project, error)

	// FindByName retrieves a project by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Project, error)

	// Update updates an existing project in the database.
	Update(ctx context.Context, project *entity.Project) error

	// Delete soft-deletes a project from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByName checks if a project with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
