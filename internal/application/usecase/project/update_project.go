// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
)

// UpdateProjectInput represents the input for project update.
// Nil pointers leave the corresponding field unchanged.
type UpdateProjectInput struct {
	ProjectID uuid.UUID
	Name      *string
	Color     *string
	Archived  *bool
}

// UpdateProjectOutput represents the output of project update.
type UpdateProjectOutput struct {
	Project *entity.Project
}

// UpdateProjectUseCase handles project update logic.
type UpdateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(projectRepo adapter.ProjectRepository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	if input.Name != nil && *input.Name != project.Name {
		if *input.Name == "" {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeMissingProjectFields,
				"project name is required",
				domainerror.ErrProjectNotFound,
			)
		}
		if len(*input.Name) > MaxProjectNameLength {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNameTooLong,
				fmt.Sprintf("project name must not exceed %d characters", MaxProjectNameLength),
				domainerror.ErrProjectNameTooLong,
			)
		}
		exists, err := uc.projectRepo.ExistsByName(ctx, *input.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check project name existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNameExists,
				"a project with this name already exists",
				domainerror.ErrProjectNameExists,
			)
		}
		project.Name = *input.Name
	}

	if input.Color != nil {
		if !hexColorRegex.MatchString(*input.Color) {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeInvalidProjectColor,
				"color must be a valid hex format (#XXXXXX)",
				domainerror.ErrInvalidProjectColor,
			)
		}
		project.Color = *input.Color
	}

	if input.Archived != nil {
		project.Archived = *input.Archived
	}

	project.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &UpdateProjectOutput{
		Project: project,
	}, nil
}
