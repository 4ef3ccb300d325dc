// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CollaboratorRole represents the role of a collaborator in the system.
type CollaboratorRole string

const (
	RoleAdmin        CollaboratorRole = "admin"
	RoleCollaborator CollaboratorRole = "collaborator"
)

// Collaborator represents a person who logs time entries. Collaborators are
// also the authentication principals of the API.
type Collaborator struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	HourlyRate   decimal.Decimal // Zero means no rate configured
	Role         CollaboratorRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCollaborator creates a new Collaborator entity.
func NewCollaborator(email, fullName, passwordHash string, role CollaboratorRole, now time.Time) *Collaborator {
	return &Collaborator{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		HourlyRate:   decimal.Zero,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// DisplayName returns the collaborator's full name, falling back to the
// email address when no name is set.
func (c *Collaborator) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return c.Email
}

// IsAdmin reports whether the collaborator has the admin role.
func (c *Collaborator) IsAdmin() bool {
	return c.Role == RoleAdmin
}
