// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/integration/persistence/model"
)

// suggestionRepository implements the adapter.SuggestionRepository interface.
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository instance.
func NewSuggestionRepository(db *gorm.DB) adapter.SuggestionRepository {
	return &suggestionRepository{
		db: db,
	}
}

// Create creates a new assignment suggestion in the database.
func (r *suggestionRepository) Create(ctx context.Context, suggestion *entity.AssignmentSuggestion) error {
	suggestionModel := model.SuggestionFromEntity(suggestion)
	result := r.db.WithContext(ctx).Create(suggestionModel)
	return result.Error
}

// BulkCreate creates multiple assignment suggestions in a single operation.
func (r *suggestionRepository) BulkCreate(ctx context.Context, suggestions []*entity.AssignmentSuggestion) error {
	if len(suggestions) == 0 {
		return nil
	}
	suggestionModels := make([]*model.SuggestionModel, len(suggestions))
	for i, s := range suggestions {
		suggestionModels[i] = model.SuggestionFromEntity(s)
	}
	result := r.db.WithContext(ctx).Create(suggestionModels)
	return result.Error
}

// FindByID retrieves a suggestion by its ID.
func (r *suggestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AssignmentSuggestion, error) {
	var suggestionModel model.SuggestionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&suggestionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSuggestionNotFound
		}
		return nil, result.Error
	}
	return suggestionModel.ToEntity(), nil
}

// FindPendingByCollaborator retrieves all pending suggestions requested by a collaborator.
func (r *suggestionRepository) FindPendingByCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]*entity.AssignmentSuggestionWithDetails, error) {
	var suggestionModels []model.SuggestionModel
	result := r.db.WithContext(ctx).
		Preload("TimeEntry").
		Preload("SuggestedProject").
		Preload("SuggestedCategory").
		Where("requested_by = ? AND status = ?", collaboratorID, string(entity.SuggestionStatusPending)).
		Order("confidence DESC, created_at ASC").
		Find(&suggestionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	suggestions := make([]*entity.AssignmentSuggestionWithDetails, len(suggestionModels))
	for i, sm := range suggestionModels {
		suggestions[i] = sm.ToEntityWithDetails()
	}
	return suggestions, nil
}

// UpdateStatus updates the status of a suggestion.
func (r *suggestionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SuggestionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.SuggestionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSuggestionNotFound
	}
	return nil
}

// DeletePendingByCollaborator removes all pending suggestions for a collaborator.
func (r *suggestionRepository) DeletePendingByCollaborator(ctx context.Context, collaboratorID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("requested_by = ? AND status = ?", collaboratorID, string(entity.SuggestionStatusPending)).
		Delete(&model.SuggestionModel{})
	return result.Error
}
