// Package error defines domain-specific errors for the Time Tracker application.
package error

import "errors"

// Assignment suggestion domain errors.
var (
	// ErrSuggestionNotFound is returned when a suggestion is not found in the system.
	ErrSuggestionNotFound = errors.New("suggestion not found")

	// ErrSuggestionAlreadyResolved is returned when approving or rejecting a
	// suggestion that is no longer pending.
	ErrSuggestionAlreadyResolved = errors.New("suggestion already resolved")

	// ErrAIServiceUnavailable is returned when the AI provider cannot be reached.
	ErrAIServiceUnavailable = errors.New("ai service unavailable")

	// ErrNoUnassignedEntries is returned when there are no entries missing a project.
	ErrNoUnassignedEntries = errors.New("no unassigned entries")
)

// SuggestionErrorCode defines error codes for suggestion errors.
// Format: SUG-XXYYYY where XX is category and YYYY is specific error.
type SuggestionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSuggestionNotFound        SuggestionErrorCode = "SUG-010001"
	ErrCodeSuggestionAlreadyResolved SuggestionErrorCode = "SUG-010002"
	ErrCodeNoUnassignedEntries       SuggestionErrorCode = "SUG-010003"

	// External service errors (02XXXX)
	ErrCodeAIServiceUnavailable SuggestionErrorCode = "SUG-020001"
	ErrCodeAIResponseInvalid    SuggestionErrorCode = "SUG-020002"

	// Internal errors (99XXXX)
	ErrCodeSuggestionInternalError SuggestionErrorCode = "SUG-990001"
)

// SuggestionError represents a suggestion error with code and message.
type SuggestionError struct {
	Code    SuggestionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SuggestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// NewSuggestionError creates a new SuggestionError with the given code and message.
func NewSuggestionError(code SuggestionErrorCode, message string, err error) *SuggestionError {
	return &SuggestionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
