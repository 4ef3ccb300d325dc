// Package error defines domain-specific errors for the Time Tracker application.
package error

import "errors"

// Collaborator domain errors.
var (
	// ErrInvalidHourlyRate is returned when a hourly rate is negative.
	ErrInvalidHourlyRate = errors.New("hourly rate must not be negative")

	// ErrInvalidRole is returned when the role is not a known collaborator role.
	ErrInvalidRole = errors.New("invalid collaborator role")

	// ErrCannotDemoteSelf is returned when an admin removes their own admin role.
	ErrCannotDemoteSelf = errors.New("cannot remove own admin role")
)

// CollaboratorErrorCode defines error codes for collaborator errors.
// Format: COL-XXYYYY where XX is category and YYYY is specific error.
type CollaboratorErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidHourlyRate CollaboratorErrorCode = "COL-010001"
	ErrCodeInvalidRole       CollaboratorErrorCode = "COL-010002"
	ErrCodeCannotDemoteSelf  CollaboratorErrorCode = "COL-010003"

	// Internal errors (99XXXX)
	ErrCodeCollaboratorInternalError CollaboratorErrorCode = "COL-990001"
)

// CollaboratorError represents a collaborator error with code and message.
type CollaboratorError struct {
	Code    CollaboratorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CollaboratorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// NewCollaboratorError creates a new CollaboratorError with the given code and message.
func NewCollaboratorError(code CollaboratorErrorCode, message string, err error) *CollaboratorError {
	return &CollaboratorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
