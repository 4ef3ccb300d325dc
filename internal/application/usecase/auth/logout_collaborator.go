// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/time-tracker/backend/internal/application/adapter"
)

// LogoutCollaboratorInput represents the input for collaborator logout.
type LogoutCollaboratorInput struct {
	RefreshToken string
}

// LogoutCollaboratorOutput represents the output of collaborator logout.
type LogoutCollaboratorOutput struct {
	Message string
}

// LogoutCollaboratorUseCase handles collaborator logout logic.
type LogoutCollaboratorUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutCollaboratorUseCase creates a new LogoutCollaboratorUseCase instance.
func NewLogoutCollaboratorUseCase(tokenService adapter.TokenService) *LogoutCollaboratorUseCase {
	return &LogoutCollaboratorUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the logout by invalidating the refresh token.
func (uc *LogoutCollaboratorUseCase) Execute(ctx context.Context, input LogoutCollaboratorInput) (*LogoutCollaboratorOutput, error) {
	// Invalidate refresh token (ignore errors as the token might already be invalid)
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	return &LogoutCollaboratorOutput{
		Message: "Successfully logged out",
	}, nil
}
