// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
)

// LoginCollaboratorInput represents the input for collaborator login.
type LoginCollaboratorInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginCollaboratorOutput represents the output of collaborator login.
type LoginCollaboratorOutput struct {
	AccessToken  string
	RefreshToken string
	Collaborator *entity.Collaborator
}

// LoginCollaboratorUseCase handles collaborator login logic.
type LoginCollaboratorUseCase struct {
	collaboratorRepo adapter.CollaboratorRepository
	passwordService  adapter.PasswordService
	tokenService     adapter.TokenService
}

// NewLoginCollaboratorUseCase creates a new LoginCollaboratorUseCase instance.
func NewLoginCollaboratorUseCase(
	collaboratorRepo adapter.CollaboratorRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginCollaboratorUseCase {
	return &LoginCollaboratorUseCase{
		collaboratorRepo: collaboratorRepo,
		passwordService:  passwordService,
		tokenService:     tokenService,
	}
}

// Execute performs the collaborator login.
func (uc *LoginCollaboratorUseCase) Execute(ctx context.Context, input LoginCollaboratorInput) (*LoginCollaboratorOutput, error) {
	// Find collaborator by email
	collaborator, err := uc.collaboratorRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Return generic error to prevent email enumeration
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Verify password
	if err := uc.passwordService.VerifyPassword(collaborator.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, collaborator.ID, collaborator.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginCollaboratorOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Collaborator: collaborator,
	}, nil
}
