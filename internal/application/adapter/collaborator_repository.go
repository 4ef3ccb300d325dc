// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/domain/entity"
)

// CollaboratorRepository defines the interface for collaborator persistence operations.
type CollaboratorRepository interface {
	// Create creates a new collaborator in the database.
	Create(ctx context.Context, collaborator *entity.Collaborator) error

	// FindByID retrieves a collaborator by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Collaborator, error)

	// FindByEmail retrieves a collaborator by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Collaborator, error)

	// FindAll retrieves all collaborators ordered by full name.
	FindAll(ctx context.Context) ([]*entity.Collaborator, error)

	// Update updates an existing collaborator in the database.
	Update(ctx context.Context, collaborator *entity.Collaborator) error

	// Delete removes a collaborator from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail checks if a collaborator with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
