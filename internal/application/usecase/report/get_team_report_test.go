package report

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/domain/timesheet"
)

type fakeEntryRepo struct {
	entries []*entity.TimeEntryWithRelations
	findErr error
	calls   int
}

func (r *fakeEntryRepo) Create(ctx context.Context, entry *entity.TimeEntry) error { return nil }
func (r *fakeEntryRepo) BulkCreate(ctx context.Context, entries []*entity.TimeEntry) error {
	return nil
}
func (r *fakeEntryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error) {
	return nil, nil
}
func (r *fakeEntryRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.TimeEntryWithRelations, error) {
	return nil, nil
}
func (r *fakeEntryRepo) FindByFilter(ctx context.Context, filter adapter.TimeEntryFilter, pagination adapter.TimeEntryPagination) (*entity.TimeEntryListResult, error) {
	return nil, nil
}
func (r *fakeEntryRepo) FindAllByFilter(ctx context.Context, filter adapter.TimeEntryFilter) ([]*entity.TimeEntryWithRelations, error) {
	r.calls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.entries, nil
}
func (r *fakeEntryRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.TimeEntry, error) {
	return nil, nil
}
func (r *fakeEntryRepo) Update(ctx context.Context, entry *entity.TimeEntry) error { return nil }
func (r *fakeEntryRepo) BulkAssignProject(ctx context.Context, ids []uuid.UUID, projectID uuid.UUID, categoryID *uuid.UUID) (int64, error) {
	return 0, nil
}
func (r *fakeEntryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeProjectRepo struct {
	projects []*entity.Project
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *entity.Project) error { return nil }
func (r *fakeProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	return nil, nil
}
func (r *fakeProjectRepo) FindAll(ctx context.Context, includeArchived bool) ([]*entity.Project, error) {
	return r.projects, nil
}
func (r *fakeProjectRepo) FindByName(ctx context.Context, name string) (*entity.Project, error) {
	return nil, nil
}
func (r *fakeProjectRepo) Update(ctx context.Context, project *entity.Project) error { return nil }
func (r *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (r *fakeProjectRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error { return nil }
func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return nil, nil
}
func (r *fakeCategoryRepo) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}
func (r *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}
func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (r *fakeCategoryRepo) ExistsByProjectAndName(ctx context.Context, projectID uuid.UUID, name string) (bool, error) {
	return false, nil
}

type fakeCollaboratorRepo struct {
	collaborators []*entity.Collaborator
}

func (r *fakeCollaboratorRepo) Create(ctx context.Context, collaborator *entity.Collaborator) error {
	return nil
}
func (r *fakeCollaboratorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collaborator, error) {
	return nil, nil
}
func (r *fakeCollaboratorRepo) FindByEmail(ctx context.Context, email string) (*entity.Collaborator, error) {
	return nil, nil
}
func (r *fakeCollaboratorRepo) FindAll(ctx context.Context) ([]*entity.Collaborator, error) {
	return r.collaborators, nil
}
func (r *fakeCollaboratorRepo) Update(ctx context.Context, collaborator *entity.Collaborator) error {
	return nil
}
func (r *fakeCollaboratorRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeCollaboratorRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type fakeCache struct {
	data   map[string][]byte
	getErr error
	sets   int
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.data[key], nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.data == nil {
		c.data = make(map[string][]byte)
	}
	c.data[key] = value
	c.sets++
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context) error {
	c.data = nil
	return nil
}

func reportEntry(date time.Time, hours, rate string, projectName, collaboratorName string) *entity.TimeEntryWithRelations {
	e := &entity.TimeEntryWithRelations{
		Entry: &entity.TimeEntry{
			ID:             uuid.New(),
			CollaboratorID: uuid.New(),
			Date:           date,
			DurationHours:  decimal.RequireFromString(hours),
		},
		Collaborator: &entity.Collaborator{
			ID:         uuid.New(),
			FullName:   collaboratorName,
			Email:      collaboratorName + "@example.com",
			HourlyRate: decimal.RequireFromString(rate),
		},
	}
	if projectName != "" {
		e.Project = &entity.Project{ID: uuid.New(), Name: projectName}
		e.Entry.ProjectID = &e.Project.ID
	}
	return e
}

func TestGetTeamReportUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	reference := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	march10 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	march12 := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("aggregates totals, costs and groups", func(t *testing.T) {
		entryRepo := &fakeEntryRepo{entries: []*entity.TimeEntryWithRelations{
			reportEntry(march10, "2.5", "100", "Website Redesign", "Ada Dev"),
			reportEntry(march12, "1.5", "50", "", "Ben Ops"),
		}}
		collaborators := &fakeCollaboratorRepo{collaborators: []*entity.Collaborator{
			{ID: uuid.New(), FullName: "Ada Dev", Email: "ada@example.com", PasswordHash: "secret"},
		}}
		uc := NewGetTeamReportUseCase(entryRepo, &fakeProjectRepo{}, &fakeCategoryRepo{}, collaborators, nil)

		output, err := uc.Execute(ctx, GetTeamReportInput{ReferenceDate: reference})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if !output.TotalHours.Equal(decimal.RequireFromString("4")) {
			t.Errorf("TotalHours = %s, want 4", output.TotalHours)
		}
		if !output.TotalCost.Equal(decimal.RequireFromString("325")) {
			t.Errorf("TotalCost = %s, want 325", output.TotalCost)
		}
		if output.EntryCount != 2 {
			t.Errorf("EntryCount = %d, want 2", output.EntryCount)
		}

		if len(output.ByProject) != 2 {
			t.Fatalf("ByProject has %d groups, want 2", len(output.ByProject))
		}
		if output.ByProject[0].Key != "Website Redesign" {
			t.Errorf("ByProject[0].Key = %q, want %q", output.ByProject[0].Key, "Website Redesign")
		}
		if output.ByProject[0].Percentage != 62.5 {
			t.Errorf("ByProject[0].Percentage = %v, want 62.5", output.ByProject[0].Percentage)
		}
		if output.ByProject[1].Key != timesheet.PlaceholderNoProject {
			t.Errorf("ByProject[1].Key = %q, want %q", output.ByProject[1].Key, timesheet.PlaceholderNoProject)
		}
		if len(output.ByCollaborator) != 2 {
			t.Errorf("ByCollaborator has %d groups, want 2", len(output.ByCollaborator))
		}

		if len(output.Collaborators) != 1 {
			t.Fatalf("Collaborators has %d rows, want 1", len(output.Collaborators))
		}
		if output.Collaborators[0].Email != "ada@example.com" {
			t.Errorf("Collaborators[0].Email = %q", output.Collaborators[0].Email)
		}
	})

	t.Run("empty result still reports zero totals", func(t *testing.T) {
		uc := NewGetTeamReportUseCase(&fakeEntryRepo{}, &fakeProjectRepo{}, &fakeCategoryRepo{}, &fakeCollaboratorRepo{}, nil)

		output, err := uc.Execute(ctx, GetTeamReportInput{ReferenceDate: reference})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !output.TotalHours.IsZero() || !output.TotalCost.IsZero() || output.EntryCount != 0 {
			t.Errorf("expected empty report, got hours=%s cost=%s count=%d",
				output.TotalHours, output.TotalCost, output.EntryCount)
		}
		for _, g := range output.ByProject {
			if g.Percentage != 0 {
				t.Errorf("Percentage = %v on empty report, want 0", g.Percentage)
			}
		}
	})

	t.Run("writes the report to the cache on a miss", func(t *testing.T) {
		entryRepo := &fakeEntryRepo{entries: []*entity.TimeEntryWithRelations{
			reportEntry(march10, "2", "100", "Website Redesign", "Ada Dev"),
		}}
		cache := &fakeCache{}
		uc := NewGetTeamReportUseCase(entryRepo, &fakeProjectRepo{}, &fakeCategoryRepo{}, &fakeCollaboratorRepo{}, cache)

		output, err := uc.Execute(ctx, GetTeamReportInput{ReferenceDate: reference})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if cache.sets != 1 {
			t.Errorf("cache.sets = %d, want 1", cache.sets)
		}
		if output.CachedAt != nil {
			t.Error("fresh report should not carry a CachedAt timestamp")
		}

		var cached GetTeamReportOutput
		for _, payload := range cache.data {
			if err := json.Unmarshal(payload, &cached); err != nil {
				t.Fatalf("cached payload is not valid JSON: %v", err)
			}
		}
		if cached.CachedAt == nil {
			t.Error("cached payload should carry a CachedAt timestamp")
		}
	})

	t.Run("serves identical criteria from the cache", func(t *testing.T) {
		entryRepo := &fakeEntryRepo{entries: []*entity.TimeEntryWithRelations{
			reportEntry(march10, "2", "100", "Website Redesign", "Ada Dev"),
		}}
		cache := &fakeCache{}
		uc := NewGetTeamReportUseCase(entryRepo, &fakeProjectRepo{}, &fakeCategoryRepo{}, &fakeCollaboratorRepo{}, cache)

		input := GetTeamReportInput{ReferenceDate: reference}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("first Execute() error = %v", err)
		}

		entryRepo.findErr = errors.New("repository must not be hit on a cache hit")
		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("second Execute() error = %v", err)
		}
		if output.CachedAt == nil {
			t.Error("cached report should carry a CachedAt timestamp")
		}
		if !output.TotalHours.Equal(decimal.RequireFromString("2")) {
			t.Errorf("TotalHours = %s, want 2", output.TotalHours)
		}
	})

	t.Run("sentinel criteria spellings share a cache key", func(t *testing.T) {
		entryRepo := &fakeEntryRepo{entries: []*entity.TimeEntryWithRelations{
			reportEntry(march10, "2", "100", "Website Redesign", "Ada Dev"),
		}}
		cache := &fakeCache{}
		uc := NewGetTeamReportUseCase(entryRepo, &fakeProjectRepo{}, &fakeCategoryRepo{}, &fakeCollaboratorRepo{}, cache)

		if _, err := uc.Execute(ctx, GetTeamReportInput{ReferenceDate: reference}); err != nil {
			t.Fatalf("first Execute() error = %v", err)
		}

		entryRepo.findErr = errors.New("repository must not be hit on a cache hit")
		output, err := uc.Execute(ctx, GetTeamReportInput{
			Criteria: timesheet.Criteria{
				ProjectID:   timesheet.FilterAll,
				QuickFilter: timesheet.QuickFilterCustom,
			},
			ReferenceDate: reference,
		})
		if err != nil {
			t.Fatalf("second Execute() error = %v", err)
		}
		if output.CachedAt == nil {
			t.Error("equivalent criteria should be served from the cache")
		}
	})

	t.Run("cache read failure degrades to a fresh build", func(t *testing.T) {
		entryRepo := &fakeEntryRepo{entries: []*entity.TimeEntryWithRelations{
			reportEntry(march10, "3", "100", "Website Redesign", "Ada Dev"),
		}}
		cache := &fakeCache{getErr: errors.New("redis down")}
		uc := NewGetTeamReportUseCase(entryRepo, &fakeProjectRepo{}, &fakeCategoryRepo{}, &fakeCollaboratorRepo{}, cache)

		output, err := uc.Execute(ctx, GetTeamReportInput{ReferenceDate: reference})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if entryRepo.calls != 1 {
			t.Errorf("repository calls = %d, want 1", entryRepo.calls)
		}
		if !output.TotalHours.Equal(decimal.RequireFromString("3")) {
			t.Errorf("TotalHours = %s, want 3", output.TotalHours)
		}
	})

	t.Run("rejects an unknown quick filter", func(t *testing.T) {
		uc := NewGetTeamReportUseCase(&fakeEntryRepo{}, &fakeProjectRepo{}, &fakeCategoryRepo{}, &fakeCollaboratorRepo{}, nil)

		_, err := uc.Execute(ctx, GetTeamReportInput{
			Criteria:      timesheet.Criteria{QuickFilter: "fortnight"},
			ReferenceDate: reference,
		})
		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatalf("Execute() error = %v, want ReportError", err)
		}
		if reportErr.Code != domainerror.ErrCodeInvalidQuickFilter {
			t.Errorf("Code = %s, want %s", reportErr.Code, domainerror.ErrCodeInvalidQuickFilter)
		}
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		uc := NewGetTeamReportUseCase(&fakeEntryRepo{}, &fakeProjectRepo{}, &fakeCategoryRepo{}, &fakeCollaboratorRepo{}, nil)

		start := march12
		end := march10
		_, err := uc.Execute(ctx, GetTeamReportInput{
			Criteria:      timesheet.Criteria{DateRange: timesheet.DateRange{Start: &start, End: &end}},
			ReferenceDate: reference,
		})
		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatalf("Execute() error = %v, want ReportError", err)
		}
		if reportErr.Code != domainerror.ErrCodeInvalidDateRange {
			t.Errorf("Code = %s, want %s", reportErr.Code, domainerror.ErrCodeInvalidDateRange)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		entryRepo := &fakeEntryRepo{findErr: errors.New("connection reset")}
		uc := NewGetTeamReportUseCase(entryRepo, &fakeProjectRepo{}, &fakeCategoryRepo{}, &fakeCollaboratorRepo{}, nil)

		if _, err := uc.Execute(ctx, GetTeamReportInput{ReferenceDate: reference}); err == nil {
			t.Fatal("Execute() expected error, got nil")
		}
	})
}
