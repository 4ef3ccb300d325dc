// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/time-tracker/backend/config"
	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/application/usecase/auth"
	"github.com/time-tracker/backend/internal/application/usecase/category"
	"github.com/time-tracker/backend/internal/application/usecase/collaborator"
	"github.com/time-tracker/backend/internal/application/usecase/project"
	"github.com/time-tracker/backend/internal/application/usecase/report"
	"github.com/time-tracker/backend/internal/application/usecase/suggestion"
	"github.com/time-tracker/backend/internal/application/usecase/timeentry"
	"github.com/time-tracker/backend/internal/infra/server/router"
	"github.com/time-tracker/backend/internal/integration/adapters"
	"github.com/time-tracker/backend/internal/integration/email"
	"github.com/time-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/time-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/time-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client is optional; without it reports are generated uncached.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	collaboratorRepo := persistence.NewCollaboratorRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	projectRepo := persistence.NewProjectRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	entryRepo := persistence.NewTimeEntryRepository(db)
	suggestionRepo := persistence.NewSuggestionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	aiService := adapters.NewGeminiService(cfg.Gemini.APIKey)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	var reportCache adapter.ReportCache
	if redisClient != nil {
		reportCache = adapters.NewRedisReportCache(redisClient)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterCollaboratorUseCase(collaboratorRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginCollaboratorUseCase(collaboratorRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutCollaboratorUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(collaboratorRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(collaboratorRepo, passwordService, resetTokenService)

	// Create project use cases
	listProjectsUseCase := project.NewListProjectsUseCase(projectRepo)
	createProjectUseCase := project.NewCreateProjectUseCase(projectRepo)
	updateProjectUseCase := project.NewUpdateProjectUseCase(projectRepo)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(projectRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, projectRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create collaborator use cases
	listCollaboratorsUseCase := collaborator.NewListCollaboratorsUseCase(collaboratorRepo)
	updateCollaboratorUseCase := collaborator.NewUpdateCollaboratorUseCase(collaboratorRepo)

	// Create time entry use cases
	listTimeEntriesUseCase := timeentry.NewListTimeEntriesUseCase(entryRepo)
	createTimeEntryUseCase := timeentry.NewCreateTimeEntryUseCase(entryRepo, projectRepo, categoryRepo)
	updateTimeEntryUseCase := timeentry.NewUpdateTimeEntryUseCase(entryRepo, projectRepo, categoryRepo)
	deleteTimeEntryUseCase := timeentry.NewDeleteTimeEntryUseCase(entryRepo)
	exportTimeEntriesUseCase := timeentry.NewExportTimeEntriesUseCase(entryRepo)
	importCalendarUseCase := timeentry.NewImportCalendarUseCase(entryRepo)

	// Create report use case
	teamReportUseCase := report.NewGetTeamReportUseCase(entryRepo, projectRepo, categoryRepo, collaboratorRepo, reportCache)

	// Create suggestion use cases
	suggestAssignmentsUseCase := suggestion.NewSuggestAssignmentsUseCase(entryRepo, projectRepo, categoryRepo, suggestionRepo, aiService)
	listSuggestionsUseCase := suggestion.NewListSuggestionsUseCase(suggestionRepo)
	approveSuggestionUseCase := suggestion.NewApproveSuggestionUseCase(suggestionRepo, entryRepo)
	rejectSuggestionUseCase := suggestion.NewRejectSuggestionUseCase(suggestionRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	projectController := controller.NewProjectController(
		listProjectsUseCase,
		createProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	collaboratorController := controller.NewCollaboratorController(
		listCollaboratorsUseCase,
		updateCollaboratorUseCase,
	)

	timeEntryController := controller.NewTimeEntryController(
		listTimeEntriesUseCase,
		createTimeEntryUseCase,
		updateTimeEntryUseCase,
		deleteTimeEntryUseCase,
		exportTimeEntriesUseCase,
		importCalendarUseCase,
	)

	reportController := controller.NewReportController(teamReportUseCase)

	suggestionController := controller.NewSuggestionController(
		suggestAssignmentsUseCase,
		listSuggestionsUseCase,
		approveSuggestionUseCase,
		rejectSuggestionUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService, collaboratorRepo)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		projectController,
		categoryController,
		collaboratorController,
		timeEntryController,
		reportController,
		suggestionController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
