// Package timeentry contains time entry use cases.
package timeentry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/domain/timesheet"
)

// stubEntryRepo is an in-memory TimeEntryRepository for use case tests.
type stubEntryRepo struct {
	entries    []*entity.TimeEntryWithRelations
	findErr    error
	bulkErr    error
	created    []*entity.TimeEntry
	lastFilter adapter.TimeEntryFilter
}

func (s *stubEntryRepo) Create(ctx context.Context, entry *entity.TimeEntry) error {
	s.created = append(s.created, entry)
	return nil
}

func (s *stubEntryRepo) BulkCreate(ctx context.Context, entries []*entity.TimeEntry) error {
	if s.bulkErr != nil {
		return s.bulkErr
	}
	s.created = append(s.created, entries...)
	return nil
}

func (s *stubEntryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error) {
	for _, e := range s.entries {
		if e.Entry.ID == id {
			return e.Entry, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubEntryRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.TimeEntryWithRelations, error) {
	for _, e := range s.entries {
		if e.Entry.ID == id {
			return e, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubEntryRepo) FindByFilter(ctx context.Context, filter adapter.TimeEntryFilter, pagination adapter.TimeEntryPagination) (*entity.TimeEntryListResult, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	s.lastFilter = filter
	return &entity.TimeEntryListResult{
		Entries: s.entries,
		Total:   int64(len(s.entries)),
		Page:    pagination.Page,
		Limit:   pagination.Limit,
	}, nil
}

func (s *stubEntryRepo) FindAllByFilter(ctx context.Context, filter adapter.TimeEntryFilter) ([]*entity.TimeEntryWithRelations, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	s.lastFilter = filter
	return s.entries, nil
}

func (s *stubEntryRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.TimeEntry, error) {
	result := make([]*entity.TimeEntry, 0, len(ids))
	for _, e := range s.entries {
		for _, id := range ids {
			if e.Entry.ID == id {
				result = append(result, e.Entry)
			}
		}
	}
	return result, nil
}

func (s *stubEntryRepo) Update(ctx context.Context, entry *entity.TimeEntry) error {
	return nil
}

func (s *stubEntryRepo) BulkAssignProject(ctx context.Context, ids []uuid.UUID, projectID uuid.UUID, categoryID *uuid.UUID) (int64, error) {
	return int64(len(ids)), nil
}

func (s *stubEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func entryWithRelations(date time.Time, hours float64, comment, projectName, collaboratorName string) *entity.TimeEntryWithRelations {
	entry := &entity.TimeEntry{
		ID:             uuid.New(),
		CollaboratorID: uuid.New(),
		Date:           date,
		DurationHours:  decimal.NewFromFloat(hours),
		Comment:        comment,
	}
	withRelations := &entity.TimeEntryWithRelations{
		Entry: entry,
		Collaborator: &entity.Collaborator{
			ID:       entry.CollaboratorID,
			FullName: collaboratorName,
			Email:    "test@example.com",
		},
	}
	if projectName != "" {
		projectID := uuid.New()
		entry.ProjectID = &projectID
		withRelations.Project = &entity.Project{ID: projectID, Name: projectName}
	}
	return withRelations
}

func TestExportTimeEntriesUseCase_Execute(t *testing.T) {
	referenceDate := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	entryDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("exports matching entries with the default layout", func(t *testing.T) {
		repo := &stubEntryRepo{
			entries: []*entity.TimeEntryWithRelations{
				entryWithRelations(entryDate, 2.5, "API pagination", "Website Redesign", "Ada Dev"),
			},
		}
		uc := NewExportTimeEntriesUseCase(repo)

		output, err := uc.Execute(context.Background(), ExportTimeEntriesInput{
			ReferenceDate: referenceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Filename != "time_entries_2025-03-31.csv" {
			t.Errorf("expected filename time_entries_2025-03-31.csv, got %s", output.Filename)
		}

		lines := strings.Split(strings.TrimRight(output.Content, "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
		}
		if lines[0] != "Date;Collaborator;Project;Category;Hours;Comment" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		for _, want := range []string{"10/03/2025", "Ada Dev", "Website Redesign", "2,50", "API pagination"} {
			if !strings.Contains(lines[1], want) {
				t.Errorf("expected row to contain %q, got %s", want, lines[1])
			}
		}
	})

	t.Run("search criteria narrows the export", func(t *testing.T) {
		repo := &stubEntryRepo{
			entries: []*entity.TimeEntryWithRelations{
				entryWithRelations(entryDate, 2.5, "API pagination", "Website Redesign", "Ada Dev"),
				entryWithRelations(entryDate, 1, "design review", "Website Redesign", "Ada Dev"),
			},
		}
		uc := NewExportTimeEntriesUseCase(repo)

		output, err := uc.Execute(context.Background(), ExportTimeEntriesInput{
			Criteria:      timesheet.Criteria{Search: "pagination"},
			ReferenceDate: referenceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimRight(output.Content, "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
		}
		if strings.Contains(output.Content, "design review") {
			t.Errorf("expected non-matching entry to be excluded, got %s", output.Content)
		}
	})

	t.Run("quick filter window reaches the repository filter", func(t *testing.T) {
		repo := &stubEntryRepo{}
		uc := NewExportTimeEntriesUseCase(repo)

		_, err := uc.Execute(context.Background(), ExportTimeEntriesInput{
			Criteria:      timesheet.Criteria{QuickFilter: timesheet.QuickFilterLast30Days},
			ReferenceDate: referenceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.lastFilter.StartDate == nil || repo.lastFilter.EndDate == nil {
			t.Fatal("expected quick filter window to be pushed into the repository filter")
		}
		wantStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		if !repo.lastFilter.StartDate.Equal(wantStart) {
			t.Errorf("expected window start %v, got %v", wantStart, *repo.lastFilter.StartDate)
		}
	})

	t.Run("unknown quick filter is rejected before the repository", func(t *testing.T) {
		repo := &stubEntryRepo{findErr: errors.New("repository must not be hit")}
		uc := NewExportTimeEntriesUseCase(repo)

		_, err := uc.Execute(context.Background(), ExportTimeEntriesInput{
			Criteria:      timesheet.Criteria{QuickFilter: "fortnight"},
			ReferenceDate: referenceDate,
		})
		var entryErr *domainerror.TimeEntryError
		if !errors.As(err, &entryErr) {
			t.Fatalf("expected TimeEntryError, got %v", err)
		}
		if entryErr.Code != domainerror.ErrCodeInvalidEntryFilter {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidEntryFilter, entryErr.Code)
		}
	})

	t.Run("repository errors surface", func(t *testing.T) {
		repo := &stubEntryRepo{findErr: errors.New("db down")}
		uc := NewExportTimeEntriesUseCase(repo)

		if _, err := uc.Execute(context.Background(), ExportTimeEntriesInput{ReferenceDate: referenceDate}); err == nil {
			t.Fatal("expected error when the repository fails")
		}
	})
}
