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

// UpdateTimeEntryInput represents the input for time entry update.
// Nil pointers leave the corresponding field unchanged. ClearProject and
// ClearCategory unset the respective assignment.
type UpdateTimeEntryInput struct {
	RequestedBy   uuid.UUID
	IsAdmin       bool
	EntryID       uuid.UUID
	ProjectID     *uuid.UUID
	CategoryID    *uuid.UUID
	ClearProject  bool
	ClearCategory bool
	Date          *time.Time
	DurationHours *decimal.Decimal
	Comment       *string
}

// UpdateTimeEntryOutput represents the output of time entry update.
type UpdateTimeEntryOutput struct {
	Entry *entity.TimeEntry
}

// UpdateTimeEntryUseCase handles time entry update logic.
type UpdateTimeEntryUseCase struct {
	entryRepo    adapter.TimeEntryRepository
	projectRepo  adapter.ProjectRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateTimeEntryUseCase creates a new UpdateTimeEntryUseCase instance.
func NewUpdateTimeEntryUseCase(
	entryRepo adapter.TimeEntryRepository,
	projectRepo adapter.ProjectRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTimeEntryUseCase {
	return &UpdateTimeEntryUseCase{
		entryRepo:    entryRepo,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the time entry update. Collaborators may only touch their
// own entries; admins may touch anyone's.
func (uc *UpdateTimeEntryUseCase) Execute(ctx context.Context, input UpdateTimeEntryInput) (*UpdateTimeEntryOutput, error) {
	entry, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeTimeEntryNotFound,
			"time entry not found",
			domainerror.ErrTimeEntryNotFound,
		)
	}

	if !input.IsAdmin && entry.CollaboratorID != input.RequestedBy {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeNotEntryOwner,
			"not authorized to modify entry",
			domainerror.ErrNotEntryOwner,
		)
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTimeEntryError(
				domainerror.ErrCodeInvalidEntryDate,
				"entry date is required",
				domainerror.ErrInvalidEntryDate,
			)
		}
		entry.Date = *input.Date
	}

	if input.DurationHours != nil {
		if input.DurationHours.IsNegative() {
			return nil, domainerror.NewTimeEntryError(
				domainerror.ErrCodeNegativeDuration,
				"duration must not be negative",
				domainerror.ErrNegativeDuration,
			)
		}
		entry.DurationHours = *input.DurationHours
	}

	if input.Comment != nil {
		if len(*input.Comment) > MaxCommentLength {
			return nil, domainerror.NewTimeEntryError(
				domainerror.ErrCodeCommentTooLong,
				fmt.Sprintf("comment must not exceed %d characters", MaxCommentLength),
				domainerror.ErrCommentTooLong,
			)
		}
		entry.Comment = *input.Comment
	}

	if input.ClearProject {
		// Dropping the project drops the category with it
		entry.ProjectID = nil
		entry.CategoryID = nil
	} else if input.ProjectID != nil {
		project, err := uc.projectRepo.FindByID(ctx, *input.ProjectID)
		if err != nil {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNotFound,
				"project not found",
				domainerror.ErrProjectNotFound,
			)
		}
		if project.Archived {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectArchived,
				"cannot log time against an archived project",
				domainerror.ErrProjectArchived,
			)
		}
		if entry.ProjectID == nil || *entry.ProjectID != *input.ProjectID {
			// Category from the old project no longer applies
			entry.CategoryID = nil
		}
		entry.ProjectID = input.ProjectID
	}

	if input.ClearCategory {
		entry.CategoryID = nil
	} else if input.CategoryID != nil {
		if entry.ProjectID == nil {
			return nil, domainerror.NewTimeEntryError(
				domainerror.ErrCodeEntryCategoryInvalid,
				"category requires a project",
				domainerror.ErrCategoryProjectMismatch,
			)
		}
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		if category.ProjectID != *entry.ProjectID {
			return nil, domainerror.NewTimeEntryError(
				domainerror.ErrCodeEntryCategoryInvalid,
				"category does not belong to project",
				domainerror.ErrCategoryProjectMismatch,
			)
		}
		entry.CategoryID = input.CategoryID
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}

	return &UpdateTimeEntryOutput{
		Entry: entry,
	}, nil
}
