// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending transactional email, used
// by the password reset flow.
type EmailSender interface {
	// Send delivers one email through the provider.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
