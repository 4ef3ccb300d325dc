// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel represents the refresh_tokens table in the database.
type RefreshTokenModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token          string    `gorm:"type:varchar(512);uniqueIndex;not null"`
	CollaboratorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Invalidated    bool      `gorm:"default:false"`
	ExpiresAt      time.Time `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// PasswordResetTokenModel represents the password_reset_tokens table in the database.
type PasswordResetTokenModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Token          string     `gorm:"type:varchar(512);uniqueIndex;not null"`
	CollaboratorID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Email          string     `gorm:"type:varchar(255);not null"`
	Used           bool       `gorm:"default:false"`
	UsedAt         *time.Time `gorm:"type:timestamp"`
	ExpiresAt      time.Time  `gorm:"not null;index"`
	CreatedAt      time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PasswordResetTokenModel.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
