package steps

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/time-tracker/backend/internal/domain/entity"
	"github.com/time-tracker/backend/internal/integration/persistence/model"
)

func (t *testContext) aCollaboratorExistsWithEmail(email string) error {
	return t.createCollaborator(email, "DefaultPass123!", "Test Collaborator", entity.RoleCollaborator)
}

func (t *testContext) aCollaboratorExistsWithEmailAndPassword(email, password string) error {
	return t.createCollaborator(email, password, "Test Collaborator", entity.RoleCollaborator)
}

func (t *testContext) anAdminCollaboratorExistsWithEmail(email string) error {
	return t.createCollaborator(email, "DefaultPass123!", "Test Admin", entity.RoleAdmin)
}

func (t *testContext) createCollaborator(email, password, fullName string, role entity.CollaboratorRole) error {
	collaboratorID := uuid.New()
	t.currentCollaboratorID = collaboratorID

	now := time.Now().UTC()
	collaboratorModel := &model.CollaboratorModel{
		ID:           collaboratorID,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hashPassword(password),
		HourlyRate:   decimal.Zero,
		Role:         string(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(collaboratorModel).Error
}

func (t *testContext) theCollaboratorHasAnHourlyRateOf(email, rate string) error {
	hourlyRate, err := decimal.NewFromString(rate)
	if err != nil {
		return fmt.Errorf("invalid hourly rate %q: %w", rate, err)
	}

	return t.db.DbConn.
		Model(&model.CollaboratorModel{}).
		Where("email = ?", email).
		Update("hourly_rate", hourlyRate).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs issues a token pair for the named collaborator, creating the
// account when it does not exist yet.
func (t *testContext) iAmLoggedInAs(email string) error {
	var collaboratorModel model.CollaboratorModel
	if err := t.db.DbConn.Where("email = ?", email).First(&collaboratorModel).Error; err != nil {
		if err := t.createCollaborator(email, "DefaultPass123!", "Test Collaborator "+email, entity.RoleCollaborator); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&collaboratorModel).Error; err != nil {
			return fmt.Errorf("collaborator not found after create: %w", err)
		}
	}

	t.currentCollaboratorID = collaboratorModel.ID
	return t.issueTokens(collaboratorModel.ID, email)
}

func (t *testContext) theCollaboratorIsLoggedInWithValidTokens() error {
	return t.issueTokens(t.currentCollaboratorID, "test@example.com")
}

func (t *testContext) issueTokens(collaboratorID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessToken, err := signTestJWT(collaboratorID, email, "access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessToken

	refreshToken, err := signTestJWT(collaboratorID, email, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshToken

	// Refresh tokens are tracked server side, mirror that here
	refreshTokenModel := &model.RefreshTokenModel{
		ID:             uuid.New(),
		Token:          refreshToken,
		CollaboratorID: collaboratorID,
		Invalidated:    false,
		ExpiresAt:      now.Add(7 * 24 * time.Hour),
		CreatedAt:      now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func signTestJWT(collaboratorID uuid.UUID, email, tokenType string, now time.Time, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"collaborator_id": collaboratorID.String(),
		"email":           email,
		"token_type":      tokenType,
		"exp":             jwt.NewNumericDate(now.Add(duration)),
		"iat":             jwt.NewNumericDate(now),
		"nbf":             jwt.NewNumericDate(now),
		"iss":             "time-tracker",
		"sub":             collaboratorID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var collaboratorModel model.CollaboratorModel
	if err := t.db.DbConn.Where("email = ?", email).First(&collaboratorModel).Error; err != nil {
		return fmt.Errorf("collaborator not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:             uuid.New(),
		Token:          t.resetToken,
		CollaboratorID: collaboratorModel.ID,
		Email:          email,
		Used:           false,
		ExpiresAt:      time.Now().Add(1 * time.Hour),
		CreatedAt:      time.Now(),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:             uuid.New(),
		Token:          t.expiredToken,
		CollaboratorID: uuid.New(),
		Email:          "expired@example.com",
		Used:           false,
		ExpiresAt:      time.Now().Add(-1 * time.Hour),
		CreatedAt:      time.Now().Add(-2 * time.Hour),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) aProjectExistsWithName(name string) error {
	return t.createProject(name, false)
}

func (t *testContext) anArchivedProjectExistsWithName(name string) error {
	return t.createProject(name, true)
}

func (t *testContext) createProject(name string, archived bool) error {
	projectID := uuid.New()
	t.currentProjectID = projectID

	now := time.Now().UTC()
	projectModel := &model.ProjectModel{
		ID:        projectID,
		Name:      name,
		Color:     "#6366F1",
		Archived:  archived,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(projectModel).Error
}

func (t *testContext) aCategoryExistsUnderProject(name, projectName string) error {
	var projectModel model.ProjectModel
	if err := t.db.DbConn.Where("name = ?", projectName).First(&projectModel).Error; err != nil {
		return fmt.Errorf("project %q not found: %w", projectName, err)
	}

	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		ProjectID: projectModel.ID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aTimeEntryExistsOn(hours, date, comment string) error {
	projectID := t.currentProjectID
	categoryID := t.currentCategoryID

	var projectRef *uuid.UUID
	var categoryRef *uuid.UUID
	if projectID != uuid.Nil {
		projectRef = &projectID
	}
	if categoryID != uuid.Nil {
		categoryRef = &categoryID
	}

	return t.createTimeEntry(hours, date, comment, projectRef, categoryRef)
}

func (t *testContext) anUnassignedTimeEntryExistsOn(hours, date, comment string) error {
	return t.createTimeEntry(hours, date, comment, nil, nil)
}

func (t *testContext) createTimeEntry(hours, date, comment string, projectID, categoryID *uuid.UUID) error {
	duration, err := decimal.NewFromString(hours)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", hours, err)
	}

	entryDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	entryID := uuid.New()
	t.currentEntryID = entryID
	t.entryIDs = append(t.entryIDs, entryID)

	now := time.Now().UTC()
	entryModel := &model.TimeEntryModel{
		ID:             entryID,
		CollaboratorID: t.currentCollaboratorID,
		ProjectID:      projectID,
		CategoryID:     categoryID,
		Date:           entryDate,
		DurationHours:  duration,
		Comment:        comment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return t.db.DbConn.Create(entryModel).Error
}

func (t *testContext) aPendingSuggestionExistsForTheEntry() error {
	if t.currentEntryID == uuid.Nil {
		return fmt.Errorf("no time entry seeded for suggestion")
	}
	if t.currentProjectID == uuid.Nil {
		return fmt.Errorf("no project seeded for suggestion")
	}

	suggestionID := uuid.New()
	t.currentSuggestionID = suggestionID

	projectID := t.currentProjectID
	var categoryRef *uuid.UUID
	if t.currentCategoryID != uuid.Nil {
		categoryID := t.currentCategoryID
		categoryRef = &categoryID
	}

	now := time.Now().UTC()
	suggestionModel := &model.SuggestionModel{
		ID:                  suggestionID,
		RequestedBy:         t.currentCollaboratorID,
		TimeEntryID:         t.currentEntryID,
		SuggestedProjectID:  &projectID,
		SuggestedCategoryID: categoryRef,
		MatchType:           string(entity.MatchTypeContains),
		MatchKeyword:        "standup",
		AffectedEntryIDs:    pq.StringArray{t.currentEntryID.String()},
		Confidence:          0.9,
		Reasoning:           "comment mentions a recurring team ceremony",
		Status:              string(entity.SuggestionStatusPending),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	return t.db.DbConn.Create(suggestionModel).Error
}
