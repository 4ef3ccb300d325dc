package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/usecase/project"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/integration/entrypoint/dto"
)

// ProjectController handles project endpoints.
type ProjectController struct {
	listUseCase   *project.ListProjectsUseCase
	createUseCase *project.CreateProjectUseCase
	updateUseCase *project.UpdateProjectUseCase
	deleteUseCase *project.DeleteProjectUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	listUseCase *project.ListProjectsUseCase,
	createUseCase *project.CreateProjectUseCase,
	updateUseCase *project.UpdateProjectUseCase,
	deleteUseCase *project.DeleteProjectUseCase,
) *ProjectController {
	return &ProjectController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	input := project.ListProjectsInput{
		IncludeArchived: ctx.Query("include_archived") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectListResponse(output.Projects))
}

// Create handles POST /projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingProjectFields),
		})
		return
	}

	input := project.CreateProjectInput{
		Name:  req.Name,
		Color: req.Color,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProjectResponse(output.Project))
}

// Update handles PATCH /projects/:id requests.
func (c *ProjectController) Update(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := project.UpdateProjectInput{
		ProjectID: projectID,
		Name:      req.Name,
		Color:     req.Color,
		Archived:  req.Archived,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project))
}

// Delete handles DELETE /projects/:id requests.
func (c *ProjectController) Delete(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), project.DeleteProjectInput{
		ProjectID: projectID,
	})
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleProjectError handles project errors and returns appropriate HTTP responses.
func (c *ProjectController) handleProjectError(ctx *gin.Context, err error) {
	var prjErr *domainerror.ProjectError
	if errors.As(err, &prjErr) {
		statusCode := c.getStatusCodeForProjectError(prjErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: prjErr.Message,
			Code:  string(prjErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProjectError maps project error codes to HTTP status codes.
func (c *ProjectController) getStatusCodeForProjectError(code domainerror.ProjectErrorCode) int {
	switch code {
	case domainerror.ErrCodeProjectNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeProjectNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeProjectNameTooLong,
		domainerror.ErrCodeInvalidProjectColor,
		domainerror.ErrCodeProjectArchived,
		domainerror.ErrCodeMissingProjectFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
