// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/integration/persistence/model"
)

// collaboratorRepository implements the adapter.CollaboratorRepository interface.
type collaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new collaborator repository instance.
func NewCollaboratorRepository(db *gorm.DB) adapter.CollaboratorRepository {
	return &collaboratorRepository{
		db: db,
	}
}

// Create creates a new collaborator in the database.
func (r *collaboratorRepository) Create(ctx context.Context, collaborator *entity.Collaborator) error {
	collaboratorModel := model.CollaboratorFromEntity(collaborator)
	result := r.db.WithContext(ctx).Create(collaboratorModel)
	return result.Error
}

// FindByID retrieves a collaborator by their ID.
func (r *collaboratorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collaborator, error) {
	var collaboratorModel model.CollaboratorModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&collaboratorModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCollaboratorNotFound
		}
		return nil, result.Error
	}
	return collaboratorModel.ToEntity(), nil
}

// FindByEmail retrieves a collaborator by their email address.
func (r *collaboratorRepository) FindByEmail(ctx context.Context, email string) (*entity.Collaborator, error) {
	var collaboratorModel model.CollaboratorModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&collaboratorModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCollaboratorNotFound
		}
		return nil, result.Error
	}
	return collaboratorModel.ToEntity(), nil
}

// FindAll retrieves all collaborators ordered by full name.
func (r *collaboratorRepository) FindAll(ctx context.Context) ([]*entity.Collaborator, error) {
	var collaboratorModels []model.CollaboratorModel
	result := r.db.WithContext(ctx).Order("full_name ASC, email ASC").Find(&collaboratorModels)
	if result.Error != nil {
		return nil, result.Error
	}

	collaborators := make([]*entity.Collaborator, len(collaboratorModels))
	for i, cm := range collaboratorModels {
		collaborators[i] = cm.ToEntity()
	}
	return collaborators, nil
}

// Update updates an existing collaborator in the database.
func (r *collaboratorRepository) Update(ctx context.Context, collaborator *entity.Collaborator) error {
	collaboratorModel := model.CollaboratorFromEntity(collaborator)
	result := r.db.WithContext(ctx).Save(collaboratorModel)
	return result.Error
}

// Delete removes a collaborator from the database.
func (r *collaboratorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CollaboratorModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCollaboratorNotFound
	}
	return nil
}

// ExistsByEmail checks if a collaborator with the given email exists.
func (r *collaboratorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CollaboratorModel{}).
		Where("email = ?", email).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
