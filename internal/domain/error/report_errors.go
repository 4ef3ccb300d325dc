// Package error defines domain-specific errors for the Time Tracker application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidDateRange is returned when the report start date is after the end date.
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrInvalidQuickFilter is returned when an unknown quick filter keyword is used.
	ErrInvalidQuickFilter = errors.New("invalid quick filter")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange   ReportErrorCode = "RPT-010001"
	ErrCodeInvalidQuickFilter ReportErrorCode = "RPT-010002"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
