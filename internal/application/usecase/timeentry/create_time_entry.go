// Package timeentry contains time entry use cases.
package timeentry

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

// MaxCommentLength is the maximum allowed length for entry comments.
const MaxCommentLength = 500

// CreateTimeEntryInput represents the input for time entry creation.
type CreateTimeEntryInput struct {
	CollaboratorID uuid.UUID
	ProjectID      *uuid.UUID
	CategoryID     *uuid.UUID
	Date           time.Time
	DurationHours  decimal.Decimal
	Comment        string
}

// CreateTimeEntryOutput represents the output of time entry creation.
type CreateTimeEntryOutput struct {
	Entry *entity.TimeEntry
}

// CreateTimeEntryUseCase handles time entry creation logic.
type CreateTimeEntryUseCase struct {
	entryRepo    adapter.TimeEntryRepository
	projectRepo  adapter.ProjectRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateTimeEntryUseCase creates a new CreateTimeEntryUseCase instance.
func NewCreateTimeEntryUseCase(
	entryRepo adapter.TimeEntryRepository,
	projectRepo adapter.ProjectRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTimeEntryUseCase {
	return &CreateTimeEntryUseCase{
		entryRepo:    entryRepo,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the time entry creation.
func (uc *CreateTimeEntryUseCase) Execute(ctx context.Context, input CreateTimeEntryInput) (*CreateTimeEntryOutput, error) {
	if err := uc.validate(ctx, input.ProjectID, input.CategoryID, input.Date, input.DurationHours, input.Comment); err != nil {
		return nil, err
	}

	entry := entity.NewTimeEntry(
		input.CollaboratorID,
		input.ProjectID,
		input.CategoryID,
		input.Date,
		input.DurationHours,
		input.Comment,
		time.Now().UTC(),
	)

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return &CreateTimeEntryOutput{
		Entry: entry,
	}, nil
}

// validate checks the shared invariants for creating and updating entries.
func (uc *CreateTimeEntryUseCase) validate(
	ctx context.Context,
	projectID, categoryID *uuid.UUID,
	date time.Time,
	duration decimal.Decimal,
	comment string,
) error {
	if date.IsZero() {
		return domainerror.NewTimeEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"entry date is required",
			domainerror.ErrInvalidEntryDate,
		)
	}

	if duration.IsNegative() {
		return domainerror.NewTimeEntryError(
			domainerror.ErrCodeNegativeDuration,
			"duration must not be negative",
			domainerror.ErrNegativeDuration,
		)
	}

	if len(comment) > MaxCommentLength {
		return domainerror.NewTimeEntryError(
			domainerror.ErrCodeCommentTooLong,
			fmt.Sprintf("comment must not exceed %d characters", MaxCommentLength),
			domainerror.ErrCommentTooLong,
		)
	}

	// A category can only be set alongside its project
	if categoryID != nil && projectID == nil {
		return domainerror.NewTimeEntryError(
			domainerror.ErrCodeEntryCategoryInvalid,
			"category requires a project",
			domainerror.ErrCategoryProjectMismatch,
		)
	}

	if projectID != nil {
		project, err := uc.projectRepo.FindByID(ctx, *projectID)
		if err != nil {
			return domainerror.NewProjectError(
				domainerror.ErrCodeProjectNotFound,
				"project not found",
				domainerror.ErrProjectNotFound,
			)
		}
		if project.Archived {
			return domainerror.NewProjectError(
				domainerror.ErrCodeProjectArchived,
				"cannot log time against an archived project",
				domainerror.ErrProjectArchived,
			)
		}
	}

	if categoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *categoryID)
		if err != nil {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		if category.ProjectID != *projectID {
			return domainerror.NewTimeEntryError(
				domainerror.ErrCodeEntryCategoryInvalid,
				"category does not belong to project",
				domainerror.ErrCategoryProjectMismatch,
			)
		}
	}

	return nil
}
