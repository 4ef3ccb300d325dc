// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/domain/entity"
)

// SuggestionRepository defines the interface for assignment suggestion persistence.
type SuggestionRepository interface {
	// Create creates a new assignment suggestion in the database.
	Create(ctx context.Context, suggestion *entity.AssignmentSuggestion) error

	// BulkCreate creates multiple assignment suggestions in a single operation.
	BulkCreate(ctx context.Context, suggestions []*entity.AssignmentSuggestion) error

	// FindByID retrieves a suggestion by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AssignmentSuggestion, error)

	// FindPendingByCollaborator retrieves all pending suggestions requested by a collaborator.
	FindPendingByCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]*entity.AssignmentSuggestionWithDetails, error)

	// UpdateStatus updates the status of a suggestion.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SuggestionStatus) error

	// DeletePendingByCollaborator removes all pending suggestions for a collaborator.
	// Called before a new suggestion round so stale proposals do not pile up.
	DeletePendingByCollaborator(ctx context.Context, collaboratorID uuid.UUID) error
}
