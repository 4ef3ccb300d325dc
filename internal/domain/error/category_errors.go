// Package error defines domain-specific errors for the Time Tracker application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name within a project.
	ErrCategoryNameExists = errors.New("category name already exists in project")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrCategoryProjectMismatch is returned when a category does not belong to the given project.
	ErrCategoryProjectMismatch = errors.New("category does not belong to project")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryNameTooLong     CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNotFound        CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameExists      CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryProjectMismatch CategoryErrorCode = "CAT-010004"
	ErrCodeMissingCategoryFields   CategoryErrorCode = "CAT-010005"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
