// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
)

// MaxProjectNameLength is the maximum allowed length for project names.
const MaxProjectNameLength = 100

// hexColorRegex is compiled once at package level for performance.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	Name  string
	Color string // Optional, defaults to entity.DefaultProjectColor
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation logic.
type CreateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(projectRepo adapter.ProjectRepository) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project creation.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeMissingProjectFields,
			"project name is required",
			domainerror.ErrProjectNotFound,
		)
	}

	if len(input.Name) > MaxProjectNameLength {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNameTooLong,
			fmt.Sprintf("project name must not exceed %d characters", MaxProjectNameLength),
			domainerror.ErrProjectNameTooLong,
		)
	}

	if input.Color != "" && !hexColorRegex.MatchString(input.Color) {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeInvalidProjectColor,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidProjectColor,
		)
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultProjectColor
	}

	// Check if project name already exists
	exists, err := uc.projectRepo.ExistsByName(ctx, input.Name)
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

	project := entity.NewProject(input.Name, color, time.Now().UTC())

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &CreateProjectOutput{
		Project: project,
	}, nil
}
