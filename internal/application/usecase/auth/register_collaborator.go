// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
)

// RegisterCollaboratorInput represents the input for collaborator registration.
type RegisterCollaboratorInput struct {
	Email    string
	FullName string
	Password string
}

// RegisterCollaboratorOutput represents the output of collaborator registration.
type RegisterCollaboratorOutput struct {
	AccessToken  string
	RefreshToken string
	Collaborator *entity.Collaborator
}

// RegisterCollaboratorUseCase handles collaborator registration logic.
type RegisterCollaboratorUseCase struct {
	collaboratorRepo adapter.CollaboratorRepository
	passwordService  adapter.PasswordService
	tokenService     adapter.TokenService
}

// NewRegisterCollaboratorUseCase creates a new RegisterCollaboratorUseCase instance.
func NewRegisterCollaboratorUseCase(
	collaboratorRepo adapter.CollaboratorRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterCollaboratorUseCase {
	return &RegisterCollaboratorUseCase{
		collaboratorRepo: collaboratorRepo,
		passwordService:  passwordService,
		tokenService:     tokenService,
	}
}

// Execute performs the collaborator registration.
// The first registered collaborator becomes an admin; everyone after that
// starts as a regular collaborator until an admin promotes them.
func (uc *RegisterCollaboratorUseCase) Execute(ctx context.Context, input RegisterCollaboratorInput) (*RegisterCollaboratorOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	// Check if email already exists
	exists, err := uc.collaboratorRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := entity.RoleCollaborator
	existing, err := uc.collaboratorRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	if len(existing) == 0 {
		role = entity.RoleAdmin
	}

	collaborator := entity.NewCollaborator(input.Email, input.FullName, passwordHash, role, time.Now().UTC())

	if err := uc.collaboratorRepo.Create(ctx, collaborator); err != nil {
		return nil, fmt.Errorf("failed to create collaborator: %w", err)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, collaborator.ID, collaborator.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterCollaboratorOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Collaborator: collaborator,
	}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
