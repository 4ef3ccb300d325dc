// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

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
	"github.com/time-tracker/backend/internal/integration/persistence/model"
	"github.com/time-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the state shared by the steps of a single scenario.
type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	refreshToken string
	resetToken   string
	expiredToken string

	currentCollaboratorID uuid.UUID
	currentProjectID      uuid.UUID
	currentCategoryID     uuid.UUID
	currentEntryID        uuid.UUID
	currentSuggestionID   uuid.UUID
	entryIDs              []uuid.UUID
}

type response struct {
	status int
	body   any
}

var (
	serverInit     sync.Once
	portInit       sync.Once
	testDB         *mock.Db
	testServerPort int
)

func trackedModels() map[string]any {
	return map[string]any{
		"collaborators":          &model.CollaboratorModel{},
		"refresh_tokens":         &model.RefreshTokenModel{},
		"password_reset_tokens":  &model.PasswordResetTokenModel{},
		"projects":               &model.ProjectModel{},
		"categories":             &model.CategoryModel{},
		"time_entries":           &model.TimeEntryModel{},
		"assignment_suggestions": &model.SuggestionModel{},
	}
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db:         mock.NewDb("time_tracker", trackedModels()),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Collaborator setup steps
	ctx.Given(`^a collaborator exists with email "([^"]*)"$`, test.aCollaboratorExistsWithEmail)
	ctx.Given(`^a collaborator exists with email "([^"]*)" and password "([^"]*)"$`, test.aCollaboratorExistsWithEmailAndPassword)
	ctx.Given(`^an admin collaborator exists with email "([^"]*)"$`, test.anAdminCollaboratorExistsWithEmail)
	ctx.Given(`^the collaborator "([^"]*)" has an hourly rate of "([^"]*)"$`, test.theCollaboratorHasAnHourlyRateOf)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the collaborator is logged in with valid tokens$`, test.theCollaboratorIsLoggedInWithValidTokens)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Project and category setup steps
	ctx.Given(`^a project exists with name "([^"]*)"$`, test.aProjectExistsWithName)
	ctx.Given(`^an archived project exists with name "([^"]*)"$`, test.anArchivedProjectExistsWithName)
	ctx.Given(`^a category "([^"]*)" exists under project "([^"]*)"$`, test.aCategoryExistsUnderProject)

	// Time entry setup steps
	ctx.Given(`^a time entry of "([^"]*)" hours exists on "([^"]*)" with comment "([^"]*)"$`, test.aTimeEntryExistsOn)
	ctx.Given(`^an unassigned time entry of "([^"]*)" hours exists on "([^"]*)" with comment "([^"]*)"$`, test.anUnassignedTimeEntryExistsOn)
	ctx.Given(`^a pending suggestion exists for the entry$`, test.aPendingSuggestionExistsForTheEntry)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response body should contain "([^"]*)"$`, test.theResponseBodyShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentCollaboratorID = uuid.Nil
	t.currentProjectID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentEntryID = uuid.Nil
	t.currentSuggestionID = uuid.Nil
	t.entryIDs = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			collaboratorRepo := persistence.NewCollaboratorRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			projectRepo := persistence.NewProjectRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			entryRepo := persistence.NewTimeEntryRepository(testDB.DbConn)
			suggestionRepo := persistence.NewSuggestionRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			emailSender := email.NewMockEmailSender()
			aiService := adapters.NewGeminiService("")

			// Create auth use cases
			registerUseCase := auth.NewRegisterCollaboratorUseCase(collaboratorRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginCollaboratorUseCase(collaboratorRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutCollaboratorUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(collaboratorRepo, resetTokenService, emailSender, "http://localhost:3000")
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

			// Reports run against a miniredis-backed cache, flushed per scenario
			reportCache := adapters.NewRedisReportCache(mock.NewRedis())
			teamReportUseCase := report.NewGetTeamReportUseCase(entryRepo, projectRepo, categoryRepo, collaboratorRepo, reportCache)

			// Create suggestion use cases
			suggestAssignmentsUseCase := suggestion.NewSuggestAssignmentsUseCase(entryRepo, projectRepo, categoryRepo, suggestionRepo, aiService)
			listSuggestionsUseCase := suggestion.NewListSuggestionsUseCase(suggestionRepo)
			approveSuggestionUseCase := suggestion.NewApproveSuggestionUseCase(suggestionRepo, entryRepo)
			rejectSuggestionUseCase := suggestion.NewRejectSuggestionUseCase(suggestionRepo)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool {
					return testDB != nil && testDB.DbConn != nil
				},
				func() bool {
					return false
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
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService, collaboratorRepo)

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
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{collaborator_id}}", t.currentCollaboratorID.String())
	content = strings.ReplaceAll(content, "{{project_id}}", t.currentProjectID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{entry_id}}", t.currentEntryID.String())
	content = strings.ReplaceAll(content, "{{suggestion_id}}", t.currentSuggestionID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Tokens returned by auth endpoints feed later authenticated requests
	if token, ok := responseBody["access_token"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := responseBody["refresh_token"].(string); ok && token != "" {
		t.refreshToken = token
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

// theResponseBodyShouldContain matches a substring anywhere in the raw body.
// Used for non-JSON responses such as exports.
func (t *testContext) theResponseBodyShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	var raw string
	switch body := t.response.body.(type) {
	case string:
		raw = body
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		raw = string(encoded)
	}

	if !strings.Contains(raw, expected) {
		return fmt.Errorf("response body does not contain %q: %s", expected, raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
