// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/time-tracker/backend/internal/domain/entity"
)

// TimeEntryModel represents the time_entries table in the database.
type TimeEntryModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CollaboratorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProjectID      *uuid.UUID      `gorm:"type:uuid;index"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid;index"`
	Date           time.Time       `gorm:"type:date;not null;index"`
	DurationHours  decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Comment        string          `gorm:"type:varchar(500)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Project      *ProjectModel      `gorm:"foreignKey:ProjectID;references:ID"`
	Category     *CategoryModel     `gorm:"foreignKey:CategoryID;references:ID"`
	Collaborator *CollaboratorModel `gorm:"foreignKey:CollaboratorID;references:ID"`
}

// TableName returns the table name for the TimeEntryModel.
func (TimeEntryModel) TableName() string {
	return "time_entries"
}

// ToEntity converts a TimeEntryModel to a domain TimeEntry entity.
func (m *TimeEntryModel) ToEntity() *entity.TimeEntry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.TimeEntry{
		ID:             m.ID,
		CollaboratorID: m.CollaboratorID,
		ProjectID:      m.ProjectID,
		CategoryID:     m.CategoryID,
		Date:           m.Date,
		DurationHours:  m.DurationHours,
		Comment:        m.Comment,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// ToEntityWithRelations converts a TimeEntryModel with its preloaded
// relations to a TimeEntryWithRelations entity.
func (m *TimeEntryModel) ToEntityWithRelations() *entity.TimeEntryWithRelations {
	result := &entity.TimeEntryWithRelations{
		Entry: m.ToEntity(),
	}

	if m.Project != nil {
		result.Project = m.Project.ToEntity()
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	if m.Collaborator != nil {
		result.Collaborator = m.Collaborator.ToEntity()
	}

	return result
}

// TimeEntryFromEntity creates a TimeEntryModel from a domain TimeEntry entity.
func TimeEntryFromEntity(entry *entity.TimeEntry) *TimeEntryModel {
	var deletedAt gorm.DeletedAt
	if entry.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *entry.DeletedAt, Valid: true}
	}

	return &TimeEntryModel{
		ID:             entry.ID,
		CollaboratorID: entry.CollaboratorID,
		ProjectID:      entry.ProjectID,
		CategoryID:     entry.CategoryID,
		Date:           entry.Date,
		DurationHours:  entry.DurationHours,
		Comment:        entry.Comment,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}
