package dto

import (
	"time"

	"github.com/time-tracker/backend/internal/domain/entity"
)

// SuggestionResponse represents a single assignment suggestion in API
// responses. Entry and relation names are present only when the listing
// joined them.
type SuggestionResponse struct {
	ID                  string             `json:"id"`
	TimeEntryID         string             `json:"time_entry_id"`
	SuggestedProjectID  string             `json:"suggested_project_id,omitempty"`
	SuggestedCategoryID string             `json:"suggested_category_id,omitempty"`
	MatchType           string             `json:"match_type"`
	MatchKeyword        string             `json:"match_keyword"`
	AffectedEntryIDs    []string           `json:"affected_entry_ids"`
	AffectedEntryCount  int                `json:"affected_entry_count"`
	Confidence          float64            `json:"confidence"`
	Reasoning           string             `json:"reasoning"`
	Status              string             `json:"status"`
	CreatedAt           time.Time          `json:"created_at"`
	Entry               *TimeEntryResponse `json:"entry,omitempty"`
	ProjectName         string             `json:"project_name,omitempty"`
	CategoryName        string             `json:"category_name,omitempty"`
}

// SuggestionListResponse represents the response for listing suggestions.
type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// ApproveSuggestionResponse represents the response of approving a suggestion.
type ApproveSuggestionResponse struct {
	EntriesUpdated int64 `json:"entries_updated"`
}

// ToSuggestionResponse converts a domain AssignmentSuggestion entity to a
// SuggestionResponse DTO.
func ToSuggestionResponse(s *entity.AssignmentSuggestion) SuggestionResponse {
	affected := make([]string, len(s.AffectedEntryIDs))
	for i, id := range s.AffectedEntryIDs {
		affected[i] = id.String()
	}
	resp := SuggestionResponse{
		ID:                 s.ID.String(),
		TimeEntryID:        s.TimeEntryID.String(),
		MatchType:          string(s.MatchType),
		MatchKeyword:       s.MatchKeyword,
		AffectedEntryIDs:   affected,
		AffectedEntryCount: len(affected),
		Confidence:         s.Confidence,
		Reasoning:          s.Reasoning,
		Status:             string(s.Status),
		CreatedAt:          s.CreatedAt,
	}
	if s.SuggestedProjectID != nil {
		resp.SuggestedProjectID = s.SuggestedProjectID.String()
	}
	if s.SuggestedCategoryID != nil {
		resp.SuggestedCategoryID = s.SuggestedCategoryID.String()
	}
	return resp
}

// ToSuggestionResponseWithDetails converts a suggestion with its joined
// entry and relation names to a SuggestionResponse DTO.
func ToSuggestionResponseWithDetails(d *entity.AssignmentSuggestionWithDetails) SuggestionResponse {
	resp := ToSuggestionResponse(d.Suggestion)
	if d.AffectedEntryCount > 0 {
		resp.AffectedEntryCount = d.AffectedEntryCount
	}
	if d.Entry != nil {
		entry := ToTimeEntryResponse(d.Entry)
		resp.Entry = &entry
	}
	if d.Project != nil {
		resp.ProjectName = d.Project.Name
	}
	if d.Category != nil {
		resp.CategoryName = d.Category.Name
	}
	return resp
}

// ToSuggestionListResponse converts suggestions with details to a
// SuggestionListResponse.
func ToSuggestionListResponse(details []*entity.AssignmentSuggestionWithDetails) SuggestionListResponse {
	out := make([]SuggestionResponse, len(details))
	for i, d := range details {
		out[i] = ToSuggestionResponseWithDetails(d)
	}
	return SuggestionListResponse{
		Suggestions: out,
	}
}
