package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/usecase/collaborator"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/time-tracker/backend/internal/integration/entrypoint/middleware"
)

// CollaboratorController handles collaborator endpoints.
type CollaboratorController struct {
	listUseCase   *collaborator.ListCollaboratorsUseCase
	updateUseCase *collaborator.UpdateCollaboratorUseCase
}

// NewCollaboratorController creates a new collaborator controller instance.
func NewCollaboratorController(
	listUseCase *collaborator.ListCollaboratorsUseCase,
	updateUseCase *collaborator.UpdateCollaboratorUseCase,
) *CollaboratorController {
	return &CollaboratorController{
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /collaborators requests.
func (c *CollaboratorController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), collaborator.ListCollaboratorsInput{})
	if err != nil {
		c.handleCollaboratorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCollaboratorListResponse(output.Collaborators))
}

// Update handles PATCH /collaborators/:id requests. Admin only.
func (c *CollaboratorController) Update(ctx *gin.Context) {
	requestedBy, ok := middleware.GetCollaboratorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Collaborator not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	collaboratorID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid collaborator ID format",
		})
		return
	}

	var req dto.UpdateCollaboratorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := collaborator.UpdateCollaboratorInput{
		RequestedBy:    requestedBy,
		CollaboratorID: collaboratorID,
		FullName:       req.FullName,
		HourlyRate:     req.HourlyRate,
	}
	if req.Role != nil {
		role := entity.CollaboratorRole(*req.Role)
		input.Role = &role
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCollaboratorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCollaboratorResponse(output.Collaborator))
}

// handleCollaboratorError handles collaborator errors and returns appropriate HTTP responses.
func (c *CollaboratorController) handleCollaboratorError(ctx *gin.Context, err error) {
	var colErr *domainerror.CollaboratorError
	if errors.As(err, &colErr) {
		statusCode := c.getStatusCodeForCollaboratorError(colErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: colErr.Message,
			Code:  string(colErr.Code),
		})
		return
	}

	// The target collaborator lookup and the admin check surface auth errors
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := http.StatusInternalServerError
		switch authErr.Code {
		case domainerror.ErrCodeCollaboratorNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeNotAdmin:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCollaboratorError maps collaborator error codes to HTTP status codes.
func (c *CollaboratorController) getStatusCodeForCollaboratorError(code domainerror.CollaboratorErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidHourlyRate,
		domainerror.ErrCodeInvalidRole:
		return http.StatusBadRequest
	case domainerror.ErrCodeCannotDemoteSelf:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
