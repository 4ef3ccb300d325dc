// Package collaborator contains team management use cases.
package collaborator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
)

// UpdateCollaboratorInput represents the input for updating a collaborator.
// Nil pointers leave the corresponding field unchanged. RequestedBy is the
// collaborator performing the update and must hold the admin role.
type UpdateCollaboratorInput struct {
	RequestedBy    uuid.UUID
	CollaboratorID uuid.UUID
	FullName       *string
	HourlyRate     *decimal.Decimal
	Role           *entity.CollaboratorRole
}

// UpdateCollaboratorOutput represents the output of updating a collaborator.
type UpdateCollaboratorOutput struct {
	Collaborator *entity.Collaborator
}

// UpdateCollaboratorUseCase handles collaborator update logic.
type UpdateCollaboratorUseCase struct {
	collaboratorRepo adapter.CollaboratorRepository
}

// NewUpdateCollaboratorUseCase creates a new UpdateCollaboratorUseCase instance.
func NewUpdateCollaboratorUseCase(collaboratorRepo adapter.CollaboratorRepository) *UpdateCollaboratorUseCase {
	return &UpdateCollaboratorUseCase{
		collaboratorRepo: collaboratorRepo,
	}
}

// Execute performs the collaborator update.
func (uc *UpdateCollaboratorUseCase) Execute(ctx context.Context, input UpdateCollaboratorInput) (*UpdateCollaboratorOutput, error) {
	requester, err := uc.collaboratorRepo.FindByID(ctx, input.RequestedBy)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeCollaboratorNotFound,
			"collaborator not found",
			domainerror.ErrCollaboratorNotFound,
		)
	}
	if !requester.IsAdmin() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNotAdmin,
			"admin role required",
			domainerror.ErrNotAdmin,
		)
	}

	collaborator, err := uc.collaboratorRepo.FindByID(ctx, input.CollaboratorID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeCollaboratorNotFound,
			"collaborator not found",
			domainerror.ErrCollaboratorNotFound,
		)
	}

	if input.FullName != nil {
		collaborator.FullName = *input.FullName
	}

	if input.HourlyRate != nil {
		if input.HourlyRate.IsNegative() {
			return nil, domainerror.NewCollaboratorError(
				domainerror.ErrCodeInvalidHourlyRate,
				"hourly rate must not be negative",
				domainerror.ErrInvalidHourlyRate,
			)
		}
		collaborator.HourlyRate = *input.HourlyRate
	}

	if input.Role != nil {
		if *input.Role != entity.RoleAdmin && *input.Role != entity.RoleCollaborator {
			return nil, domainerror.NewCollaboratorError(
				domainerror.ErrCodeInvalidRole,
				"role must be 'admin' or 'collaborator'",
				domainerror.ErrInvalidRole,
			)
		}
		// An admin cannot strip their own admin role
		if input.RequestedBy == input.CollaboratorID && *input.Role != entity.RoleAdmin {
			return nil, domainerror.NewCollaboratorError(
				domainerror.ErrCodeCannotDemoteSelf,
				"cannot remove own admin role",
				domainerror.ErrCannotDemoteSelf,
			)
		}
		collaborator.Role = *input.Role
	}

	collaborator.UpdatedAt = time.Now().UTC()

	if err := uc.collaboratorRepo.Update(ctx, collaborator); err != nil {
		return nil, fmt.Errorf("failed to update collaborator: %w", err)
	}

	return &UpdateCollaboratorOutput{
		Collaborator: collaborator,
	}, nil
}
