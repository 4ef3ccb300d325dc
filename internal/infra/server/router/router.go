// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/time-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/time-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	projectController      *controller.ProjectController
	categoryController     *controller.CategoryController
	collaboratorController *controller.CollaboratorController
	timeEntryController    *controller.TimeEntryController
	reportController       *controller.ReportController
	suggestionController   *controller.SuggestionController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	projectController *controller.ProjectController,
	categoryController *controller.CategoryController,
	collaboratorController *controller.CollaboratorController,
	timeEntryController *controller.TimeEntryController,
	reportController *controller.ReportController,
	suggestionController *controller.SuggestionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		projectController:      projectController,
		categoryController:     categoryController,
		collaboratorController: collaboratorController,
		timeEntryController:    timeEntryController,
		reportController:       reportController,
		suggestionController:   suggestionController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Project routes (reads require authentication, writes require admin)
		if r.projectController != nil && r.authMiddleware != nil {
			projects := v1.Group("/projects")
			projects.Use(r.authMiddleware.Authenticate())
			{
				projects.GET("", r.projectController.List)
				projects.POST("", r.authMiddleware.RequireAdmin(), r.projectController.Create)
				projects.PATCH("/:id", r.authMiddleware.RequireAdmin(), r.projectController.Update)
				projects.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.projectController.Delete)
			}
		}

		// Category routes (reads require authentication, writes require admin)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.authMiddleware.RequireAdmin(), r.categoryController.Create)
				categories.PATCH("/:id", r.authMiddleware.RequireAdmin(), r.categoryController.Update)
				categories.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.categoryController.Delete)
			}
		}

		// Collaborator routes (reads require authentication, updates require admin)
		if r.collaboratorController != nil && r.authMiddleware != nil {
			collaborators := v1.Group("/collaborators")
			collaborators.Use(r.authMiddleware.Authenticate())
			{
				collaborators.GET("", r.collaboratorController.List)
				collaborators.PATCH("/:id", r.authMiddleware.RequireAdmin(), r.collaboratorController.Update)
			}
		}

		// Time entry routes (require authentication)
		if r.timeEntryController != nil && r.authMiddleware != nil {
			entries := v1.Group("/time-entries")
			entries.Use(r.authMiddleware.Authenticate())
			{
				entries.GET("", r.timeEntryController.List)
				entries.POST("", r.timeEntryController.Create)
				entries.GET("/export", r.timeEntryController.Export)
				entries.POST("/import/calendar", r.timeEntryController.ImportCalendar)
				entries.PATCH("/:id", r.timeEntryController.Update)
				entries.DELETE("/:id", r.timeEntryController.Delete)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/team", r.reportController.GetTeamReport)
			}
		}

		// Suggestion routes (require authentication)
		if r.suggestionController != nil && r.authMiddleware != nil {
			suggestions := v1.Group("/suggestions")
			suggestions.Use(r.authMiddleware.Authenticate())
			{
				suggestions.GET("", r.suggestionController.List)
				suggestions.POST("/generate", r.suggestionController.Generate)
				suggestions.POST("/:id/approve", r.suggestionController.Approve)
				suggestions.POST("/:id/reject", r.suggestionController.Reject)
			}
		}
	}
}
