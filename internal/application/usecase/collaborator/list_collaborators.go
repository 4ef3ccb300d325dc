// Package collaborator contains team management use cases.
package collaborator

import (
	"context"
	"fmt"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
)

// ListCollaboratorsInput represents the input for listing collaborators.
type ListCollaboratorsInput struct{}

// ListCollaboratorsOutput represents the output of listing collaborators.
type ListCollaboratorsOutput struct {
	Collaborators []*entity.Collaborator
}

// ListCollaboratorsUseCase handles listing collaborators logic.
type ListCollaboratorsUseCase struct {
	collaboratorRepo adapter.CollaboratorRepository
}

// NewListCollaboratorsUseCase creates a new ListCollaboratorsUseCase instance.
func NewListCollaboratorsUseCase(collaboratorRepo adapter.CollaboratorRepository) *ListCollaboratorsUseCase {
	return &ListCollaboratorsUseCase{
		collaboratorRepo: collaboratorRepo,
	}
}

// Execute performs the collaborator listing.
func (uc *ListCollaboratorsUseCase) Execute(ctx context.Context, _ ListCollaboratorsInput) (*ListCollaboratorsOutput, error) {
	collaborators, err := uc.collaboratorRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	return &ListCollaboratorsOutput{
		Collaborators: collaborators,
	}, nil
}
