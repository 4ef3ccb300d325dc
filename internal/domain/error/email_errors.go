// Package error defines domain-specific errors for the Time Tracker application.
package error

import "errors"

// Email delivery errors.
var (
	// ErrEmailSendFailed is returned when an email could not be delivered.
	ErrEmailSendFailed = errors.New("email send failed")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// ErrCodePermanentEmailFailure marks failures that must not be retried.
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-010001"

	// ErrCodeTemporaryEmailFailure marks failures that may succeed on retry.
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020001"
)

// EmailError represents an email delivery error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
