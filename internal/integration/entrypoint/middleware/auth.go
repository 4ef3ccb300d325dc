// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// CollaboratorIDKey is the context key for the authenticated collaborator's ID.
	CollaboratorIDKey ContextKey = "collaborator_id"
	// CollaboratorEmailKey is the context key for the authenticated collaborator's email.
	CollaboratorEmailKey ContextKey = "collaborator_email"
	// CollaboratorRoleKey is the context key for the authenticated collaborator's role.
	CollaboratorRoleKey ContextKey = "collaborator_role"
)

// AuthMiddleware provides JWT authentication middleware. The collaborator
// record is loaded on every authenticated request so role changes take
// effect without waiting for token expiry.
type AuthMiddleware struct {
	tokenService     adapter.TokenService
	collaboratorRepo adapter.CollaboratorRepository
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(
	tokenService adapter.TokenService,
	collaboratorRepo adapter.CollaboratorRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService:     tokenService,
		collaboratorRepo: collaboratorRepo,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		// Check Bearer prefix
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		// Extract token
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		// A valid token for a removed collaborator is still rejected
		collaborator, err := m.collaboratorRepo.FindByID(c.Request.Context(), claims.CollaboratorID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		// Store collaborator info in context
		c.Set(string(CollaboratorIDKey), collaborator.ID)
		c.Set(string(CollaboratorEmailKey), collaborator.Email)
		c.Set(string(CollaboratorRoleKey), collaborator.Role)

		c.Next()
	}
}

// RequireAdmin returns a Gin middleware handler that rejects non-admin
// collaborators. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdminFromContext(c) {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Admin role required",
				Code:  string(domainerror.ErrCodeNotAdmin),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCollaboratorIDFromContext extracts the collaborator ID from the Gin context.
func GetCollaboratorIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	collaboratorID, exists := c.Get(string(CollaboratorIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := collaboratorID.(uuid.UUID)
	return id, ok
}

// GetCollaboratorEmailFromContext extracts the collaborator email from the Gin context.
func GetCollaboratorEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(CollaboratorEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

// IsAdminFromContext reports whether the authenticated collaborator is an admin.
func IsAdminFromContext(c *gin.Context) bool {
	role, exists := c.Get(string(CollaboratorRoleKey))
	if !exists {
		return false
	}
	r, ok := role.(entity.CollaboratorRole)
	return ok && r == entity.RoleAdmin
}
