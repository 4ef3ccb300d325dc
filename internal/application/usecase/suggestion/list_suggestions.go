// Package suggestion contains AI project assignment use cases.
package suggestion

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
)

// ListSuggestionsInput represents the input for listing pending suggestions.
type ListSuggestionsInput struct {
	CollaboratorID uuid.UUID
}

// ListSuggestionsOutput represents the output of listing pending suggestions.
type ListSuggestionsOutput struct {
	Suggestions []*entity.AssignmentSuggestionWithDetails
}

// ListSuggestionsUseCase handles listing pending suggestions.
type ListSuggestionsUseCase struct {
	suggestionRepo adapter.SuggestionRepository
}

// NewListSuggestionsUseCase creates a new ListSuggestionsUseCase instance.
func NewListSuggestionsUseCase(suggestionRepo adapter.SuggestionRepository) *ListSuggestionsUseCase {
	return &ListSuggestionsUseCase{
		suggestionRepo: suggestionRepo,
	}
}

// Execute lists the pending suggestions for the collaborator.
func (uc *ListSuggestionsUseCase) Execute(ctx context.Context, input ListSuggestionsInput) (*ListSuggestionsOutput, error) {
	suggestions, err := uc.suggestionRepo.FindPendingByCollaborator(ctx, input.CollaboratorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}

	return &ListSuggestionsOutput{
		Suggestions: suggestions,
	}, nil
}
