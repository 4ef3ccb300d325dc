package timeentry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/domain/timesheet"
)

func TestListTimeEntriesUseCase_Execute(t *testing.T) {
	referenceDate := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	entryDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("search narrows and pages the result", func(t *testing.T) {
		repo := &stubEntryRepo{
			entries: []*entity.TimeEntryWithRelations{
				entryWithRelations(entryDate, 2.5, "API pagination", "Website Redesign", "Ada Dev"),
				entryWithRelations(entryDate, 1, "standup", "Website Redesign", "Ada Dev"),
			},
		}
		uc := NewListTimeEntriesUseCase(repo)

		output, err := uc.Execute(context.Background(), ListTimeEntriesInput{
			Criteria:      timesheet.Criteria{Search: "pagination"},
			ReferenceDate: referenceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Total != 1 || len(output.Entries) != 1 {
			t.Fatalf("expected 1 matching entry, got total=%d len=%d", output.Total, len(output.Entries))
		}
		if output.Entries[0].Comment != "API pagination" {
			t.Errorf("unexpected entry: %+v", output.Entries[0])
		}
		if output.Page != 1 || output.Limit != DefaultPageLimit || output.TotalPages != 1 {
			t.Errorf("unexpected paging: page=%d limit=%d pages=%d", output.Page, output.Limit, output.TotalPages)
		}
	})

	t.Run("unknown quick filter is rejected before the repository", func(t *testing.T) {
		repo := &stubEntryRepo{findErr: errors.New("repository must not be hit")}
		uc := NewListTimeEntriesUseCase(repo)

		_, err := uc.Execute(context.Background(), ListTimeEntriesInput{
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
}
