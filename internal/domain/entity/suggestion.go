// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchType represents how a suggestion keyword matches entry comments.
type MatchType string

const (
	MatchTypeExact      MatchType = "exact"
	MatchTypeStartsWith MatchType = "startsWith"
	MatchTypeContains   MatchType = "contains"
)

// SuggestionStatus represents the review status of an assignment suggestion.
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusApproved SuggestionStatus = "approved"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

// AssignmentSuggestion represents an AI-proposed project/category assignment
// for an unassigned time entry. A single suggestion may cover several entries
// whose comments match the same keyword.
type AssignmentSuggestion struct {
	ID                  uuid.UUID
	RequestedBy         uuid.UUID
	TimeEntryID         uuid.UUID
	SuggestedProjectID  *uuid.UUID
	SuggestedCategoryID *uuid.UUID
	MatchType           MatchType
	MatchKeyword        string
	AffectedEntryIDs    []uuid.UUID
	Confidence          float64
	Reasoning           string
	Status              SuggestionStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewAssignmentSuggestion creates a new pending AssignmentSuggestion entity.
func NewAssignmentSuggestion(
	requestedBy, timeEntryID uuid.UUID,
	suggestedProjectID, suggestedCategoryID *uuid.UUID,
	matchType MatchType,
	matchKeyword string,
	affectedEntryIDs []uuid.UUID,
	confidence float64,
	reasoning string,
	now time.Time,
) *AssignmentSuggestion {
	return &AssignmentSuggestion{
		ID:                  uuid.New(),
		RequestedBy:         requestedBy,
		TimeEntryID:         timeEntryID,
		SuggestedProjectID:  suggestedProjectID,
		SuggestedCategoryID: suggestedCategoryID,
		MatchType:           matchType,
		MatchKeyword:        matchKeyword,
		AffectedEntryIDs:    affectedEntryIDs,
		Confidence:          confidence,
		Reasoning:           reasoning,
		Status:              SuggestionStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// AssignmentSuggestionWithDetails carries a suggestion together with the
// entry and relations it refers to.
type AssignmentSuggestionWithDetails struct {
	Suggestion         *AssignmentSuggestion
	Entry              *TimeEntry
	Project            *Project
	Category           *Category
	AffectedEntryCount int
}
