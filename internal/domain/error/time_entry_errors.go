// Package error defines domain-specific errors for the Time Tracker application.
package error

import "errors"

// Time entry domain errors.
var (
	// ErrTimeEntryNotFound is returned when a time entry is not found in the system.
	ErrTimeEntryNotFound = errors.New("time entry not found")

	// ErrInvalidEntryDate is returned when the entry date is missing or malformed.
	ErrInvalidEntryDate = errors.New("invalid entry date")

	// ErrNegativeDuration is returned when the logged duration is negative.
	ErrNegativeDuration = errors.New("duration must not be negative")

	// ErrNotEntryOwner is returned when a collaborator modifies someone else's entry.
	ErrNotEntryOwner = errors.New("not authorized to modify entry")

	// ErrCommentTooLong is returned when the comment exceeds the maximum length.
	ErrCommentTooLong = errors.New("comment too long")

	// ErrNoEventsToImport is returned when a calendar import carries no usable events.
	ErrNoEventsToImport = errors.New("no events to import")

	// ErrInvalidEntryFilter is returned when a list or export filter is malformed.
	ErrInvalidEntryFilter = errors.New("invalid filter")
)

// TimeEntryErrorCode defines error codes for time entry errors.
// Format: TE-XXYYYY where XX is category and YYYY is specific error.
type TimeEntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryDate     TimeEntryErrorCode = "TE-010001"
	ErrCodeNegativeDuration     TimeEntryErrorCode = "TE-010002"
	ErrCodeTimeEntryNotFound    TimeEntryErrorCode = "TE-010003"
	ErrCodeNotEntryOwner        TimeEntryErrorCode = "TE-010004"
	ErrCodeCommentTooLong       TimeEntryErrorCode = "TE-010005"
	ErrCodeMissingEntryFields   TimeEntryErrorCode = "TE-010006"
	ErrCodeEntryCategoryInvalid TimeEntryErrorCode = "TE-010007"
	ErrCodeInvalidEntryFilter   TimeEntryErrorCode = "TE-010008"

	// Import errors (02XXXX)
	ErrCodeNoEventsToImport TimeEntryErrorCode = "TE-020001"

	// Internal errors (99XXXX)
	ErrCodeEntryInternalError TimeEntryErrorCode = "TE-990001"
)

// TimeEntryError represents a time entry error with code and message.
type TimeEntryError struct {
	Code    TimeEntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TimeEntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TimeEntryError) Unwrap() error {
	return e.Err
}

// NewTimeEntryError creates a new TimeEntryError with the given code and message.
func NewTimeEntryError(code TimeEntryErrorCode, message string, err error) *TimeEntryError {
	return &TimeEntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
