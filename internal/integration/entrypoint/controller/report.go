package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/time-tracker/backend/internal/application/usecase/report"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/integration/entrypoint/dto"
)

// ReportController handles team report endpoints.
type ReportController struct {
	teamReportUseCase *report.GetTeamReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(teamReportUseCase *report.GetTeamReportUseCase) *ReportController {
	return &ReportController{
		teamReportUseCase: teamReportUseCase,
	}
}

// GetTeamReport handles GET /reports/team requests. The report output is
// serialized as-is; its fields already carry JSON tags.
func (c *ReportController) GetTeamReport(ctx *gin.Context) {
	input := report.GetTeamReportInput{
		Criteria:      criteriaFromQuery(ctx),
		ReferenceDate: time.Now(),
	}

	output, err := c.teamReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		statusCode := c.getStatusCodeForReportError(rptErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidQuickFilter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
