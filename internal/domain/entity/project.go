// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProjectColor is applied when a project is created without a color.
const DefaultProjectColor = "#6B7280"

// Project represents a project that time entries can be logged against.
type Project struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewProject creates a new Project entity.
func NewProject(name, color string, now time.Time) *Project {
	return &Project{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
