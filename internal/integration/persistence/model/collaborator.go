// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/time-tracker/backend/internal/domain/entity"
)

// CollaboratorModel represents the collaborators table in the database.
type CollaboratorModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string          `gorm:"type:varchar(255);not null"`
	PasswordHash string          `gorm:"type:varchar(255);not null"`
	HourlyRate   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Role         string          `gorm:"type:varchar(20);not null;default:'collaborator'"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CollaboratorModel.
func (CollaboratorModel) TableName() string {
	return "collaborators"
}

// ToEntity converts a CollaboratorModel to a domain Collaborator entity.
func (m *CollaboratorModel) ToEntity() *entity.Collaborator {
	return &entity.Collaborator{
		ID:           m.ID,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		HourlyRate:   m.HourlyRate,
		Role:         entity.CollaboratorRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CollaboratorFromEntity creates a CollaboratorModel from a domain Collaborator entity.
func CollaboratorFromEntity(collaborator *entity.Collaborator) *CollaboratorModel {
	return &CollaboratorModel{
		ID:           collaborator.ID,
		Email:        collaborator.Email,
		FullName:     collaborator.FullName,
		PasswordHash: collaborator.PasswordHash,
		HourlyRate:   collaborator.HourlyRate,
		Role:         string(collaborator.Role),
		CreatedAt:    collaborator.CreatedAt,
		UpdatedAt:    collaborator.UpdatedAt,
	}
}
