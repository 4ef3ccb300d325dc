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

// RejectSuggestionInput represents the input for rejecting a suggestion.
type RejectSuggestionInput struct {
	SuggestionID   uuid.UUID
	CollaboratorID uuid.UUID
}

// RejectSuggestionOutput represents the output of rejecting a suggestion.
type RejectSuggestionOutput struct {
	Message string
}

// RejectSuggestionUseCase marks a suggestion as rejected without touching
// the affected entries.
type RejectSuggestionUseCase struct {
	suggestionRepo adapter.SuggestionRepository
}

// NewRejectSuggestionUseCase creates a new RejectSuggestionUseCase instance.
func NewRejectSuggestionUseCase(suggestionRepo adapter.SuggestionRepository) *RejectSuggestionUseCase {
	return &RejectSuggestionUseCase{
		suggestionRepo: suggestionRepo,
	}
}

// Execute rejects the suggestion.
func (uc *RejectSuggestionUseCase) Execute(ctx context.Context, input RejectSuggestionInput) (*RejectSuggestionOutput, error) {
	suggestion, err := uc.suggestionRepo.FindByID(ctx, input.SuggestionID)
	if err != nil || suggestion.RequestedBy != input.CollaboratorID {
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

	if err := uc.suggestionRepo.UpdateStatus(ctx, suggestion.ID, entity.SuggestionStatusRejected); err != nil {
		return nil, fmt.Errorf("failed to update suggestion status: %w", err)
	}

	return &RejectSuggestionOutput{
		Message: "Suggestion rejected",
	}, nil
}
