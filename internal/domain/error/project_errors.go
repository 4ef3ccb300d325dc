// Package error defines domain-specific errors for the Time Tracker application.
package error

import "errors"

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found in the system.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectNameExists is returned when attempting to create a project with an existing name.
	ErrProjectNameExists = errors.New("project name already exists")

	// ErrProjectNameTooLong is returned when the project name exceeds the maximum length.
	ErrProjectNameTooLong = errors.New("project name too long")

	// ErrProjectArchived is returned when logging time against an archived project.
	ErrProjectArchived = errors.New("project is archived")

	// ErrInvalidProjectColor is returned when the project color format is invalid.
	ErrInvalidProjectColor = errors.New("invalid color format")
)

// ProjectErrorCode defines error codes for project errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectErrorCode string

const (
	ErrCodeProjectNameTooLong    ProjectErrorCode = "PRJ-010001"
	ErrCodeInvalidProjectColor   ProjectErrorCode = "PRJ-010002"
	ErrCodeProjectNotFound       ProjectErrorCode = "PRJ-010003"
	ErrCodeProjectNameExists     ProjectErrorCode = "PRJ-010004"
	ErrCodeProjectArchived       ProjectErrorCode = "PRJ-010005"
	ErrCodeMissingProjectFields  ProjectErrorCode = "PRJ-010006"
)

// ProjectError represents a project error with code and message.
type ProjectError struct {
	Code    ProjectErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError creates a new ProjectError with the given code and message.
func NewProjectError(code ProjectErrorCode, message string, err error) *ProjectError {
	return &ProjectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
