// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/domain/entity"
)

// AIAssignmentRequest represents a request to assign projects to time entries.
type AIAssignmentRequest struct {
	CollaboratorID uuid.UUID
	Entries        []*EntryForAI
	Projects       []*ProjectForAI
}

// EntryForAI represents time entry data for AI processing.
type EntryForAI struct {
	ID      uuid.UUID
	Date    string
	Hours   string
	Comment string
}

// ProjectForAI represents project data for AI processing, including the
// categories available under it.
type ProjectForAI struct {
	ID         uuid.UUID
	Name       string
	Categories []CategoryForAI
}

// CategoryForAI represents category data for AI processing.
type CategoryForAI struct {
	ID   uuid.UUID
	Name string
}

// AIAssignmentResult represents the AI's project assignment suggestion.
type AIAssignmentResult struct {
	EntryID             uuid.UUID
	SuggestedProjectID  uuid.UUID
	SuggestedCategoryID *uuid.UUID
	MatchType           entity.MatchType
	MatchKeyword        string
	AffectedEntryIDs    []uuid.UUID
	Confidence          float64
	Reasoning           string
}

// AIAssignmentService defines the interface for AI project assignment operations.
type AIAssignmentService interface {
	// SuggestAssignments analyzes unassigned entries and returns project suggestions.
	SuggestAssignments(ctx context.Context, request *AIAssignmentRequest) ([]*AIAssignmentResult, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
