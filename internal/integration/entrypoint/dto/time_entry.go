package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/time-tracker/backend/internal/domain/entity"
	"github.com/time-tracker/backend/internal/domain/timesheet"
)

// DateFormat is the wire format for day-granularity dates.
const DateFormat = "2006-01-02"

// CreateTimeEntryRequest represents the request body for time entry creation.
// Project and category are optional; an entry may start unassigned.
type CreateTimeEntryRequest struct {
	ProjectID     *string         `json:"project_id,omitempty" binding:"omitempty,uuid"`
	CategoryID    *string         `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Date          string          `json:"date" binding:"required"`
	DurationHours decimal.Decimal `json:"duration_hours"`
	Comment       string          `json:"comment,omitempty" binding:"omitempty,max=500"`
}

// UpdateTimeEntryRequest represents the request body for time entry update.
// Absent fields are left unchanged; the clear flags unset an assignment.
type UpdateTimeEntryRequest struct {
	ProjectID     *string          `json:"project_id,omitempty" binding:"omitempty,uuid"`
	CategoryID    *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearProject  bool             `json:"clear_project,omitempty"`
	ClearCategory bool             `json:"clear_category,omitempty"`
	Date          *string          `json:"date,omitempty"`
	DurationHours *decimal.Decimal `json:"duration_hours,omitempty"`
	Comment       *string          `json:"comment,omitempty" binding:"omitempty,max=500"`
}

// TimeEntryResponse represents a single time entry in API responses. The
// relation names are present only when the listing joined them.
type TimeEntryResponse struct {
	ID               string          `json:"id"`
	CollaboratorID   string          `json:"collaborator_id"`
	ProjectID        string          `json:"project_id,omitempty"`
	CategoryID       string          `json:"category_id,omitempty"`
	Date             string          `json:"date"`
	DurationHours    decimal.Decimal `json:"duration_hours"`
	Comment          string          `json:"comment"`
	ProjectName      string          `json:"project_name,omitempty"`
	CategoryName     string          `json:"category_name,omitempty"`
	CollaboratorName string          `json:"collaborator_name,omitempty"`
}

// TimeEntryListResponse represents the response for listing time entries.
type TimeEntryListResponse struct {
	Entries    []TimeEntryResponse `json:"entries"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}

// CalendarEventRequest represents a single calendar event to import.
// DurationHours, when set, wins over the start/end span.
type CalendarEventRequest struct {
	UID           string          `json:"uid,omitempty"`
	Summary       string          `json:"summary" binding:"required"`
	Location      string          `json:"location,omitempty"`
	Start         time.Time       `json:"start" binding:"required"`
	End           time.Time       `json:"end"`
	DurationHours decimal.Decimal `json:"duration_hours"`
}

// ImportCalendarRequest represents the request body for importing calendar
// events as time entries.
type ImportCalendarRequest struct {
	Events     []CalendarEventRequest `json:"events" binding:"required,min=1,dive"`
	RangeStart string                 `json:"range_start" binding:"required"`
	RangeEnd   string                 `json:"range_end" binding:"required"`
}

// ImportCalendarResponse represents the response of a calendar import.
type ImportCalendarResponse struct {
	Created []TimeEntryResponse `json:"created"`
	Skipped int                 `json:"skipped"`
}

// ToTimeEntryResponse converts a domain TimeEntry entity to a
// TimeEntryResponse DTO.
func ToTimeEntryResponse(e *entity.TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:             e.ID.String(),
		CollaboratorID: e.CollaboratorID.String(),
		Date:           e.Date.Format(DateFormat),
		DurationHours:  e.DurationHours,
		Comment:        e.Comment,
	}
	if e.ProjectID != nil {
		resp.ProjectID = e.ProjectID.String()
	}
	if e.CategoryID != nil {
		resp.CategoryID = e.CategoryID.String()
	}
	return resp
}

// ToTimeEntryResponseFromRecord converts a timesheet Record to a
// TimeEntryResponse DTO.
func ToTimeEntryResponseFromRecord(r timesheet.Record) TimeEntryResponse {
	return TimeEntryResponse{
		ID:               r.ID,
		CollaboratorID:   r.CollaboratorID,
		ProjectID:        r.ProjectID,
		CategoryID:       r.CategoryID,
		Date:             r.Date.Format(DateFormat),
		DurationHours:    r.DurationHours,
		Comment:          r.Comment,
		ProjectName:      r.ProjectLabel(),
		CategoryName:     r.CategoryLabel(),
		CollaboratorName: r.CollaboratorLabel(),
	}
}

// ToTimeEntryListResponse converts paginated records to a
// TimeEntryListResponse.
func ToTimeEntryListResponse(records []timesheet.Record, total, page, limit, totalPages int) TimeEntryListResponse {
	entries := make([]TimeEntryResponse, len(records))
	for i, r := range records {
		entries[i] = ToTimeEntryResponseFromRecord(r)
	}
	return TimeEntryListResponse{
		Entries:    entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// ToCalendarEvent converts a CalendarEventRequest to a domain calendar event.
func (r CalendarEventRequest) ToCalendarEvent() timesheet.Event {
	return timesheet.Event{
		UID:           r.UID,
		Summary:       r.Summary,
		Location:      r.Location,
		Start:         r.Start,
		End:           r.End,
		DurationHours: r.DurationHours,
	}
}
