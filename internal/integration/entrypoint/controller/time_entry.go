package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/usecase/timeentry"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/domain/timesheet"
	"github.com/time-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/time-tracker/backend/internal/integration/entrypoint/middleware"
)

// TimeEntryController handles time entry endpoints.
type TimeEntryController struct {
	listUseCase   *timeentry.ListTimeEntriesUseCase
	createUseCase *timeentry.CreateTimeEntryUseCase
	updateUseCase *timeentry.UpdateTimeEntryUseCase
	deleteUseCase *timeentry.DeleteTimeEntryUseCase
	exportUseCase *timeentry.ExportTimeEntriesUseCase
	importUseCase *timeentry.ImportCalendarUseCase
}

// NewTimeEntryController creates a new time entry controller instance.
func NewTimeEntryController(
	listUseCase *timeentry.ListTimeEntriesUseCase,
	createUseCase *timeentry.CreateTimeEntryUseCase,
	updateUseCase *timeentry.UpdateTimeEntryUseCase,
	deleteUseCase *timeentry.DeleteTimeEntryUseCase,
	exportUseCase *timeentry.ExportTimeEntriesUseCase,
	importUseCase *timeentry.ImportCalendarUseCase,
) *TimeEntryController {
	return &TimeEntryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
	}
}

// criteriaFromQuery builds filter criteria from the request's query
// parameters. Empty and "all" values disable the respective exact filter.
func criteriaFromQuery(ctx *gin.Context) timesheet.Criteria {
	criteria := timesheet.Criteria{
		Search:         ctx.Query("search"),
		ProjectID:      ctx.Query("project_id"),
		CategoryID:     ctx.Query("category_id"),
		CollaboratorID: ctx.Query("collaborator_id"),
		QuickFilter:    timesheet.QuickFilter(ctx.Query("quick_filter")),
	}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse(dto.DateFormat, startDateStr); err == nil {
			criteria.DateRange.Start = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse(dto.DateFormat, endDateStr); err == nil {
			criteria.DateRange.End = &endDate
		}
	}

	return criteria
}

// List handles GET /time-entries requests.
func (c *TimeEntryController) List(ctx *gin.Context) {
	input := timeentry.ListTimeEntriesInput{
		Criteria:      criteriaFromQuery(ctx),
		ReferenceDate: time.Now(),
	}

	if page, err := strconv.Atoi(ctx.Query("page")); err == nil {
		input.Page = page
	}
	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil {
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	response := dto.ToTimeEntryListResponse(
		output.Entries, output.Total, output.Page, output.Limit, output.TotalPages,
	)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /time-entries requests.
func (c *TimeEntryController) Create(ctx *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Collaborator not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTimeEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	date, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidEntryDate),
		})
		return
	}

	input := timeentry.CreateTimeEntryInput{
		CollaboratorID: collaboratorID,
		Date:           date,
		DurationHours:  req.DurationHours,
		Comment:        req.Comment,
	}
	if input.ProjectID, err = parseOptionalUUID(req.ProjectID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}
	if input.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTimeEntryResponse(output.Entry))
}

// Update handles PATCH /time-entries/:id requests.
func (c *TimeEntryController) Update(ctx *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Collaborator not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid time entry ID format",
		})
		return
	}

	var req dto.UpdateTimeEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := timeentry.UpdateTimeEntryInput{
		RequestedBy:   collaboratorID,
		IsAdmin:       middleware.IsAdminFromContext(ctx),
		EntryID:       entryID,
		ClearProject:  req.ClearProject,
		ClearCategory: req.ClearCategory,
		DurationHours: req.DurationHours,
		Comment:       req.Comment,
	}
	if input.ProjectID, err = parseOptionalUUID(req.ProjectID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}
	if input.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	if req.Date != nil {
		date, err := time.Parse(dto.DateFormat, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimeEntryResponse(output.Entry))
}

// Delete handles DELETE /time-entries/:id requests.
func (c *TimeEntryController) Delete(ctx *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Collaborator not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid time entry ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), timeentry.DeleteTimeEntryInput{
		RequestedBy: collaboratorID,
		IsAdmin:     middleware.IsAdminFromContext(ctx),
		EntryID:     entryID,
	})
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Export handles GET /time-entries/export requests. It streams the filtered
// entries as a semicolon-delimited CSV download.
func (c *TimeEntryController) Export(ctx *gin.Context) {
	input := timeentry.ExportTimeEntriesInput{
		Criteria:      criteriaFromQuery(ctx),
		ReferenceDate: time.Now(),
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(output.Content))
}

// ImportCalendar handles POST /time-entries/import/calendar requests.
// Events inside the requested range become unassigned entries for the
// authenticated collaborator.
func (c *TimeEntryController) ImportCalendar(ctx *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Collaborator not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ImportCalendarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	rangeStart, err := time.Parse(dto.DateFormat, req.RangeStart)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid range start date, expected YYYY-MM-DD",
		})
		return
	}
	rangeEnd, err := time.Parse(dto.DateFormat, req.RangeEnd)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid range end date, expected YYYY-MM-DD",
		})
		return
	}

	events := make([]timesheet.Event, len(req.Events))
	for i, e := range req.Events {
		events[i] = e.ToCalendarEvent()
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), timeentry.ImportCalendarInput{
		CollaboratorID: collaboratorID,
		Events:         events,
		RangeStart:     rangeStart,
		RangeEnd:       rangeEnd,
	})
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	created := make([]dto.TimeEntryResponse, len(output.Created))
	for i, entry := range output.Created {
		created[i] = dto.ToTimeEntryResponse(entry)
	}
	ctx.JSON(http.StatusCreated, dto.ImportCalendarResponse{
		Created: created,
		Skipped: output.Skipped,
	})
}

// parseOptionalUUID parses an optional UUID string. Nil input stays nil.
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// handleTimeEntryError handles time entry errors and returns appropriate HTTP responses.
func (c *TimeEntryController) handleTimeEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.TimeEntryError
	if errors.As(err, &entryErr) {
		statusCode := c.getStatusCodeForTimeEntryError(entryErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	// Entry writes validate the referenced project and category
	var prjErr *domainerror.ProjectError
	if errors.As(err, &prjErr) {
		statusCode := http.StatusBadRequest
		if prjErr.Code == domainerror.ErrCodeProjectNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: prjErr.Message,
			Code:  string(prjErr.Code),
		})
		return
	}
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusBadRequest
		if catErr.Code == domainerror.ErrCodeCategoryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTimeEntryError maps time entry error codes to HTTP status codes.
func (c *TimeEntryController) getStatusCodeForTimeEntryError(code domainerror.TimeEntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeTimeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotEntryOwner:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidEntryDate,
		domainerror.ErrCodeNegativeDuration,
		domainerror.ErrCodeCommentTooLong,
		domainerror.ErrCodeMissingEntryFields,
		domainerror.ErrCodeEntryCategoryInvalid,
		domainerror.ErrCodeInvalidEntryFilter,
		domainerror.ErrCodeNoEventsToImport:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
