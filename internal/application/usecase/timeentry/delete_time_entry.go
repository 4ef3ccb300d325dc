// Package timeentry contains time entry use cases.
package timeentry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/adapter"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
)

// DeleteTimeEntryInput represents the input for time entry deletion.
type DeleteTimeEntryInput struct {
	RequestedBy uuid.UUID
	IsAdmin     bool
	EntryID     uuid.UUID
}

// DeleteTimeEntryOutput represents the output of time entry deletion.
type DeleteTimeEntryOutput struct {
	Message string
}

// DeleteTimeEntryUseCase handles time entry deletion logic.
type DeleteTimeEntryUseCase struct {
	entryRepo adapter.TimeEntryRepository
}

// NewDeleteTimeEntryUseCase creates a new DeleteTimeEntryUseCase instance.
func NewDeleteTimeEntryUseCase(entryRepo adapter.TimeEntryRepository) *DeleteTimeEntryUseCase {
	return &DeleteTimeEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the time entry deletion.
func (uc *DeleteTimeEntryUseCase) Execute(ctx context.Context, input DeleteTimeEntryInput) (*DeleteTimeEntryOutput, error) {
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

	if err := uc.entryRepo.Delete(ctx, input.EntryID); err != nil {
		return nil, fmt.Errorf("failed to delete time entry: %w", err)
	}

	return &DeleteTimeEntryOutput{
		Message: "Time entry successfully deleted",
	}, nil
}
