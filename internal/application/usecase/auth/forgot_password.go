// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/time-tracker/backend/internal/application/adapter"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/integration/email"
)

// ForgotPasswordInput represents the input for forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	collaboratorRepo  adapter.CollaboratorRepository
	resetTokenService adapter.PasswordResetTokenService
	emailSender       adapter.EmailSender
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	collaboratorRepo adapter.CollaboratorRepository,
	resetTokenService adapter.PasswordResetTokenService,
	emailSender adapter.EmailSender,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		collaboratorRepo:  collaboratorRepo,
		resetTokenService: resetTokenService,
		emailSender:       emailSender,
		appBaseURL:        appBaseURL,
	}
}

const enumerationSafeMessage = "If an account with that email exists, we have sent a password reset link"

// Execute performs the forgot password request.
// Always returns success to prevent email enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	collaborator, err := uc.collaboratorRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		slog.Debug("Forgot password requested for non-existent email", "email", input.Email)
		return &ForgotPasswordOutput{Message: enumerationSafeMessage}, nil
	}

	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, collaborator.ID, collaborator.Email)
	if err != nil {
		slog.Error("Failed to generate reset token", "error", err, "collaboratorID", collaborator.ID)
		return &ForgotPasswordOutput{Message: enumerationSafeMessage}, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, resetToken.Token)

	if uc.emailSender != nil {
		subject, html, text := email.PasswordResetContent(collaborator.DisplayName(), resetURL, "1 hour")
		_, err = uc.emailSender.Send(ctx, adapter.SendEmailInput{
			To:      collaborator.Email,
			Name:    collaborator.DisplayName(),
			Subject: subject,
			HTML:    html,
			Text:    text,
		})
		if err != nil {
			slog.Error("Failed to send password reset email", "error", err, "collaboratorID", collaborator.ID)
		} else {
			slog.Info("Password reset email sent", "collaboratorID", collaborator.ID, "email", collaborator.Email)
		}
	} else {
		// Fallback: log for development when email sending is not configured
		slog.Info("Password reset token generated (email sender not configured)",
			"collaboratorID", collaborator.ID,
			"email", collaborator.Email,
			"resetURL", resetURL,
		)
	}

	return &ForgotPasswordOutput{Message: enumerationSafeMessage}, nil
}
