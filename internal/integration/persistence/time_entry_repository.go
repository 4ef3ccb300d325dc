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

// timeEntryRepository implements the adapter.TimeEntryRepository interface.
type timeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new time entry repository instance.
func NewTimeEntryRepository(db *gorm.DB) adapter.TimeEntryRepository {
	return &timeEntryRepository{
		db: db,
	}
}

// Create creates a new time entry in the database.
func (r *timeEntryRepository) Create(ctx context.Context, entry *entity.TimeEntry) error {
	entryModel := model.TimeEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	return result.Error
}

// BulkCreate creates multiple time entries in a single operation.
func (r *timeEntryRepository) BulkCreate(ctx context.Context, entries []*entity.TimeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	entryModels := make([]*model.TimeEntryModel, len(entries))
	for i, e := range entries {
		entryModels[i] = model.TimeEntryFromEntity(e)
	}
	result := r.db.WithContext(ctx).Create(entryModels)
	return result.Error
}

// FindByID retrieves a time entry by its ID.
func (r *timeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error) {
	var entryModel model.TimeEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTimeEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByIDWithRelations retrieves a time entry with its relations by ID.
func (r *timeEntryRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.TimeEntryWithRelations, error) {
	var entryModel model.TimeEntryModel
	result := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Category").
		Preload("Collaborator").
		Where("id = ?", id).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTimeEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntityWithRelations(), nil
}

// FindByFilter retrieves time entries based on filter criteria with pagination.
func (r *timeEntryRepository) FindByFilter(ctx context.Context, filter adapter.TimeEntryFilter, pagination adapter.TimeEntryPagination) (*entity.TimeEntryListResult, error) {
	query := r.filtered(ctx, filter)

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	page := pagination.Page
	if page < 1 {
		page = 1
	}
	limit := pagination.Limit
	if limit < 1 {
		limit = 50
	}
	offset := (page - 1) * limit

	var entryModels []model.TimeEntryModel
	result := query.
		Preload("Project").
		Preload("Category").
		Preload("Collaborator").
		Order("date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.TimeEntryWithRelations, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntityWithRelations()
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &entity.TimeEntryListResult{
		Entries:    entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// FindAllByFilter retrieves all time entries matching the filter without pagination.
func (r *timeEntryRepository) FindAllByFilter(ctx context.Context, filter adapter.TimeEntryFilter) ([]*entity.TimeEntryWithRelations, error) {
	var entryModels []model.TimeEntryModel
	result := r.filtered(ctx, filter).
		Preload("Project").
		Preload("Category").
		Preload("Collaborator").
		Order("date DESC, created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.TimeEntryWithRelations, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntityWithRelations()
	}
	return entries, nil
}

// FindByIDs retrieves time entries for the given IDs.
func (r *timeEntryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.TimeEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var entryModels []model.TimeEntryModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.TimeEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// Update updates an existing time entry in the database.
func (r *timeEntryRepository) Update(ctx context.Context, entry *entity.TimeEntry) error {
	entryModel := model.TimeEntryFromEntity(entry)
	// Save skips nil pointer columns, so clear project/category explicitly
	result := r.db.WithContext(ctx).
		Model(&model.TimeEntryModel{}).
		Where("id = ?", entryModel.ID).
		Select("ProjectID", "CategoryID", "Date", "DurationHours", "Comment", "UpdatedAt").
		Updates(map[string]any{
			"project_id":     entryModel.ProjectID,
			"category_id":    entryModel.CategoryID,
			"date":           entryModel.Date,
			"duration_hours": entryModel.DurationHours,
			"comment":        entryModel.Comment,
			"updated_at":     entryModel.UpdatedAt,
		})
	return result.Error
}

// BulkAssignProject sets the project (and optionally category) for multiple entries.
func (r *timeEntryRepository) BulkAssignProject(ctx context.Context, ids []uuid.UUID, projectID uuid.UUID, categoryID *uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	updates := map[string]any{
		"project_id": projectID,
	}
	if categoryID != nil {
		updates["category_id"] = *categoryID
	}
	result := r.db.WithContext(ctx).
		Model(&model.TimeEntryModel{}).
		Where("id IN ?", ids).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete soft-deletes a time entry from the database.
func (r *timeEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TimeEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTimeEntryNotFound
	}
	return nil
}

// filtered builds the base query for a filter.
func (r *timeEntryRepository) filtered(ctx context.Context, filter adapter.TimeEntryFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.TimeEntryModel{})

	if filter.CollaboratorID != nil {
		query = query.Where("collaborator_id = ?", *filter.CollaboratorID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Unassigned {
		query = query.Where("project_id IS NULL")
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	return query
}
