// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/time-tracker/backend/internal/domain/entity"
)

// SuggestionModel represents the assignment_suggestions table in the database.
type SuggestionModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	RequestedBy         uuid.UUID      `gorm:"type:uuid;not null;index"`
	TimeEntryID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	SuggestedProjectID  *uuid.UUID     `gorm:"type:uuid;index"`
	SuggestedCategoryID *uuid.UUID     `gorm:"type:uuid"`
	MatchType           string         `gorm:"type:varchar(20);not null"`
	MatchKeyword        string         `gorm:"type:varchar(255);not null"`
	AffectedEntryIDs    pq.StringArray `gorm:"type:uuid[]"`
	Confidence          float64        `gorm:"type:decimal(4,3);not null;default:0"`
	Reasoning           string         `gorm:"type:text"`
	Status              string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
	DeletedAt           gorm.DeletedAt `gorm:"index"`

	// Relationships (not loaded by default, use Preload)
	TimeEntry         *TimeEntryModel `gorm:"foreignKey:TimeEntryID;references:ID"`
	SuggestedProject  *ProjectModel   `gorm:"foreignKey:SuggestedProjectID;references:ID"`
	SuggestedCategory *CategoryModel  `gorm:"foreignKey:SuggestedCategoryID;references:ID"`
}

// TableName returns the table name for the SuggestionModel.
func (SuggestionModel) TableName() string {
	return "assignment_suggestions"
}

// ToEntity converts a SuggestionModel to a domain AssignmentSuggestion entity.
func (m *SuggestionModel) ToEntity() *entity.AssignmentSuggestion {
	affected := make([]uuid.UUID, 0, len(m.AffectedEntryIDs))
	for _, raw := range m.AffectedEntryIDs {
		if id, err := uuid.Parse(raw); err == nil {
			affected = append(affected, id)
		}
	}

	return &entity.AssignmentSuggestion{
		ID:                  m.ID,
		RequestedBy:         m.RequestedBy,
		TimeEntryID:         m.TimeEntryID,
		SuggestedProjectID:  m.SuggestedProjectID,
		SuggestedCategoryID: m.SuggestedCategoryID,
		MatchType:           entity.MatchType(m.MatchType),
		MatchKeyword:        m.MatchKeyword,
		AffectedEntryIDs:    affected,
		Confidence:          m.Confidence,
		Reasoning:           m.Reasoning,
		Status:              entity.SuggestionStatus(m.Status),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// ToEntityWithDetails converts a SuggestionModel with preloaded relations to
// an AssignmentSuggestionWithDetails entity.
func (m *SuggestionModel) ToEntityWithDetails() *entity.AssignmentSuggestionWithDetails {
	result := &entity.AssignmentSuggestionWithDetails{
		Suggestion:         m.ToEntity(),
		AffectedEntryCount: len(m.AffectedEntryIDs),
	}

	if m.TimeEntry != nil {
		result.Entry = m.TimeEntry.ToEntity()
	}
	if m.SuggestedProject != nil {
		result.Project = m.SuggestedProject.ToEntity()
	}
	if m.SuggestedCategory != nil {
		result.Category = m.SuggestedCategory.ToEntity()
	}

	return result
}

// SuggestionFromEntity creates a SuggestionModel from a domain AssignmentSuggestion entity.
func SuggestionFromEntity(suggestion *entity.AssignmentSuggestion) *SuggestionModel {
	affected := make(pq.StringArray, 0, len(suggestion.AffectedEntryIDs))
	for _, id := range suggestion.AffectedEntryIDs {
		affected = append(affected, id.String())
	}

	return &SuggestionModel{
		ID:                  suggestion.ID,
		RequestedBy:         suggestion.RequestedBy,
		TimeEntryID:         suggestion.TimeEntryID,
		SuggestedProjectID:  suggestion.SuggestedProjectID,
		SuggestedCategoryID: suggestion.SuggestedCategoryID,
		MatchType:           string(suggestion.MatchType),
		MatchKeyword:        suggestion.MatchKeyword,
		AffectedEntryIDs:    affected,
		Confidence:          suggestion.Confidence,
		Reasoning:           suggestion.Reasoning,
		Status:              string(suggestion.Status),
		CreatedAt:           suggestion.CreatedAt,
		UpdatedAt:           suggestion.UpdatedAt,
	}
}
