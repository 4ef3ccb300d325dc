// Package suggestion contains AI project assignment use cases.
package suggestion

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
)

// ApproveSuggestionInput represents the input for approving a suggestion.
type ApproveSuggestionInput struct {
	SuggestionID   uuid.UUID
	CollaboratorID uuid.UUID
}

// ApproveSuggestionOutput represents the output of approving a suggestion.
type ApproveSuggestionOutput struct {
	EntriesUpdated int64
}

// ApproveSuggestionUseCase applies a suggestion to its affected entries.
type ApproveSuggestionUseCase struct {
	suggestionRepo adapter.SuggestionRepository
	entryRepo      adapter.TimeEntryRepository
}

// NewApproveSuggestionUseCase creates a new ApproveSuggestionUseCase instance.
func NewApproveSuggestionUseCase(
	suggestionRepo adapter.SuggestionRepository,
	entryRepo adapter.TimeEntryRepository,
) *ApproveSuggestionUseCase {
	return &ApproveSuggestionUseCase{
		suggestionRepo: suggestionRepo,
		entryRepo:      entryRepo,
	}
}

// Execute approves a suggestion and assigns the proposed project to every
// affected entry.
func (uc *ApproveSuggestionUseCase) Execute(ctx context.Context, input ApproveSuggestionInput) (*ApproveSuggestionOutput, error) {
	suggestion, err := uc.findOwned(ctx, input.SuggestionID, input.CollaboratorID)
	if err != nil {
		return nil, err
	}

	if suggestion.SuggestedProjectID == nil {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeAIResponseInvalid,
			"suggestion carries no project",
			domainerror.ErrSuggestionNotFound,
		)
	}

	ids := suggestion.AffectedEntryIDs
	if len(ids) == 0 {
		ids = []uuid.UUID{suggestion.TimeEntryID}
	}

	updated, err := uc.entryRepo.BulkAssignProject(ctx, ids, *suggestion.SuggestedProjectID, suggestion.SuggestedCategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign project: %w", err)
	}

	if err := uc.suggestionRepo.UpdateStatus(ctx, suggestion.ID, entity.SuggestionStatusApproved); err != nil {
		return nil, fmt.Errorf("failed to update suggestion status: %w", err)
	}

	return &ApproveSuggestionOutput{
		EntriesUpdated: updated,
	}, nil
}

// findOwned loads a pending suggestion and verifies ownership. Foreign
// suggestions read as not found rather than forbidden.
func (uc *ApproveSuggestionUseCase) findOwned(ctx context.Context, id, collaboratorID uuid.UUID) (*entity.AssignmentSuggestion, error) {
	suggestion, err := uc.suggestionRepo.FindByID(ctx, id)
	if err != nil || suggestion.RequestedBy != collaboratorID {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionNotFound,
			"suggestion not found",
			domainerror.ErrSuggestionNotFound,
		)
	}
	if suggestion.Status != entity.SuggestionStatusPending {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionAlreadyResolved,
			"suggestion already resolved",
			domainerror.ErrSuggestionAlreadyResolved,
		)
	}
	return suggestion, nil
}
