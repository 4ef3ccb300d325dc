package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/usecase/suggestion"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/time-tracker/backend/internal/integration/entrypoint/middleware"
)

// SuggestionController handles AI assignment suggestion endpoints.
type SuggestionController struct {
	suggestUseCase *suggestion.SuggestAssignmentsUseCase
	listUseCase    *suggestion.ListSuggestionsUseCase
	approveUseCase *suggestion.ApproveSuggestionUseCase
	rejectUseCase  *suggestion.RejectSuggestionUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(
	suggestUseCase *suggestion.SuggestAssignmentsUseCase,
	listUseCase *suggestion.ListSuggestionsUseCase,
	approveUseCase *suggestion.ApproveSuggestionUseCase,
	rejectUseCase *suggestion.RejectSuggestionUseCase,
) *SuggestionController {
	return &SuggestionController{
		suggestUseCase: suggestUseCase,
		listUseCase:    listUseCase,
		approveUseCase: approveUseCase,
		rejectUseCase:  rejectUseCase,
	}
}

// Generate handles POST /suggestions/generate requests. It asks the AI to
// propose assignments for the collaborator's unassigned entries.
func (c *SuggestionController) Generate(ctx *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Collaborator not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), suggestion.SuggestAssignmentsInput{
		CollaboratorID: collaboratorID,
	})
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	suggestions := make([]dto.SuggestionResponse, len(output.Suggestions))
	for i, s := range output.Suggestions {
		suggestions[i] = dto.ToSuggestionResponse(s)
	}
	ctx.JSON(http.StatusCreated, dto.SuggestionListResponse{Suggestions: suggestions})
}

// List handles GET /suggestions requests. Only the collaborator's own
// pending suggestions are returned.
func (c *SuggestionController) List(ctx *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Collaborator not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), suggestion.ListSuggestionsInput{
		CollaboratorID: collaboratorID,
	})
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionListResponse(output.Suggestions))
}

// Approve handles POST /suggestions/:id/approve requests.
func (c *SuggestionController) Approve(ctx *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Collaborator not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	suggestionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid suggestion ID format",
		})
		return
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), suggestion.ApproveSuggestionInput{
		SuggestionID:   suggestionID,
		CollaboratorID: collaboratorID,
	})
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ApproveSuggestionResponse{
		EntriesUpdated: output.EntriesUpdated,
	})
}

// Reject handles POST /suggestions/:id/reject requests.
func (c *SuggestionController) Reject(ctx *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Collaborator not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	suggestionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid suggestion ID format",
		})
		return
	}

	output, err := c.rejectUseCase.Execute(ctx.Request.Context(), suggestion.RejectSuggestionInput{
		SuggestionID:   suggestionID,
		CollaboratorID: collaboratorID,
	})
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleSuggestionError handles suggestion errors and returns appropriate HTTP responses.
func (c *SuggestionController) handleSuggestionError(ctx *gin.Context, err error) {
	var sugErr *domainerror.SuggestionError
	if errors.As(err, &sugErr) {
		statusCode := c.getStatusCodeForSuggestionError(sugErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: sugErr.Message,
			Code:  string(sugErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSuggestionError maps suggestion error codes to HTTP status codes.
func (c *SuggestionController) getStatusCodeForSuggestionError(code domainerror.SuggestionErrorCode) int {
	switch code {
	case domainerror.ErrCodeSuggestionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSuggestionAlreadyResolved:
		return http.StatusConflict
	case domainerror.ErrCodeNoUnassignedEntries:
		return http.StatusBadRequest
	case domainerror.ErrCodeAIServiceUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeAIResponseInvalid:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
