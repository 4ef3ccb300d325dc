package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/time-tracker/backend/internal/domain/entity"
)

// UpdateCollaboratorRequest represents the request body for updating a
// collaborator's profile. All fields are optional; absent fields are left
// unchanged.
type UpdateCollaboratorRequest struct {
	FullName   *string          `json:"full_name,omitempty" binding:"omitempty,min=1,max=100"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	Role       *string          `json:"role,omitempty" binding:"omitempty,oneof=admin collaborator"`
}

// CollaboratorResponse represents a collaborator in API responses.
// Password hashes never appear here.
type CollaboratorResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	FullName   string          `json:"full_name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Role       string          `json:"role"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CollaboratorListResponse represents the response for listing collaborators.
type CollaboratorListResponse struct {
	Collaborators []CollaboratorResponse `json:"collaborators"`
}

// ToCollaboratorResponse converts a domain Collaborator entity to a
// CollaboratorResponse DTO.
func ToCollaboratorResponse(c *entity.Collaborator) CollaboratorResponse {
	return CollaboratorResponse{
		ID:         c.ID.String(),
		Email:      c.Email,
		FullName:   c.FullName,
		HourlyRate: c.HourlyRate,
		Role:       string(c.Role),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToCollaboratorListResponse converts a list of Collaborator entities to a
// CollaboratorListResponse.
func ToCollaboratorListResponse(collaborators []*entity.Collaborator) CollaboratorListResponse {
	out := make([]CollaboratorResponse, len(collaborators))
	for i, c := range collaborators {
		out[i] = ToCollaboratorResponse(c)
	}
	return CollaboratorListResponse{
		Collaborators: out,
	}
}
