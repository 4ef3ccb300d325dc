// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a category of work within a single project. A category
// always belongs to exactly one project; entries carrying both a project and
// a category are validated for that relationship at write time.
type Category struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
func NewCategory(projectID uuid.UUID, name string, now time.Time) *Category {
	return &Category{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
