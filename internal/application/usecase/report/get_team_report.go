// Package report contains reporting use cases.
package report

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/application/usecase/timeentry"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/domain/timesheet"
)

// CacheTTL bounds how stale a cached report may be.
const CacheTTL = 5 * time.Minute

// GetTeamReportInput represents the input for generating a team report.
type GetTeamReportInput struct {
	Criteria      timesheet.Criteria
	ReferenceDate time.Time
}

// GroupReport is one aggregation row plus its share of the report total.
type GroupReport struct {
	Key        string          `json:"key"`
	TotalHours decimal.Decimal `json:"totalHours"`
	TotalCost  decimal.Decimal `json:"totalCost"`
	EntryCount int             `json:"entryCount"`
	Percentage float64         `json:"percentage"`
}

// GetTeamReportOutput represents the output of generating a team report.
type GetTeamReportOutput struct {
	TotalHours     decimal.Decimal      `json:"totalHours"`
	TotalCost      decimal.Decimal      `json:"totalCost"`
	EntryCount     int                  `json:"entryCount"`
	ByProject      []GroupReport        `json:"byProject"`
	ByCategory     []GroupReport        `json:"byCategory"`
	ByCollaborator []GroupReport        `json:"byCollaborator"`
	Projects       []*entity.Project    `json:"projects"`
	Categories     []*entity.Category   `json:"categories"`
	Collaborators  []ReportCollaborator `json:"collaborators"`
	CachedAt       *time.Time           `json:"cachedAt,omitempty"`
}

// ReportCollaborator is the collaborator shape embedded in report output.
// Password hashes never leave the use case.
type ReportCollaborator struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// GetTeamReportUseCase builds the aggregated team report.
type GetTeamReportUseCase struct {
	entryRepo        adapter.TimeEntryRepository
	projectRepo      adapter.ProjectRepository
	categoryRepo     adapter.CategoryRepository
	collaboratorRepo adapter.CollaboratorRepository
	cache            adapter.ReportCache
}

// NewGetTeamReportUseCase creates a new GetTeamReportUseCase instance.
func NewGetTeamReportUseCase(
	entryRepo adapter.TimeEntryRepository,
	projectRepo adapter.ProjectRepository,
	categoryRepo adapter.CategoryRepository,
	collaboratorRepo adapter.CollaboratorRepository,
	cache adapter.ReportCache,
) *GetTeamReportUseCase {
	return &GetTeamReportUseCase{
		entryRepo:        entryRepo,
		projectRepo:      projectRepo,
		categoryRepo:     categoryRepo,
		collaboratorRepo: collaboratorRepo,
		cache:            cache,
	}
}

// Execute builds the team report. Identical criteria within the cache TTL
// are served from the cache; a cache failure degrades to a fresh build.
func (uc *GetTeamReportUseCase) Execute(ctx context.Context, input GetTeamReportInput) (*GetTeamReportOutput, error) {
	if err := validateCriteria(input.Criteria); err != nil {
		return nil, err
	}

	key := cacheKey(input.Criteria, input.ReferenceDate)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err != nil {
			slog.Warn("Report cache read failed", "error", err)
		} else if cached != nil {
			var output GetTeamReportOutput
			if err := json.Unmarshal(cached, &output); err == nil {
				return &output, nil
			}
			slog.Warn("Discarding unreadable cached report", "key", key)
		}
	}

	var (
		entries       []*entity.TimeEntryWithRelations
		projects      []*entity.Project
		categories    []*entity.Category
		collaborators []*entity.Collaborator
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = uc.entryRepo.FindAllByFilter(gctx, timeentry.RepositoryFilter(input.Criteria, input.ReferenceDate))
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = uc.projectRepo.FindAll(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = uc.categoryRepo.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		collaborators, err = uc.collaboratorRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to gather report data: %w", err)
	}

	records := timesheet.Apply(timesheet.RecordsFromEntries(entries), input.Criteria, input.ReferenceDate)

	totals := timesheet.SummarizeRecords(records)

	output := &GetTeamReportOutput{
		TotalHours:     totals.TotalHours,
		TotalCost:      totals.TotalCost,
		EntryCount:     totals.EntryCount,
		ByProject:      groupReports(timesheet.AggregateBy(records, timesheet.ByProject), totals.TotalHours),
		ByCategory:     groupReports(timesheet.AggregateBy(records, timesheet.ByCategory), totals.TotalHours),
		ByCollaborator: groupReports(timesheet.AggregateBy(records, timesheet.ByCollaborator), totals.TotalHours),
		Projects:       projects,
		Categories:     categories,
	}
	for _, c := range collaborators {
		output.Collaborators = append(output.Collaborators, ReportCollaborator{
			ID:       c.ID.String(),
			FullName: c.FullName,
			Email:    c.Email,
		})
	}

	if uc.cache != nil {
		now := time.Now().UTC()
		output.CachedAt = &now
		if payload, err := json.Marshal(output); err == nil {
			if err := uc.cache.Set(ctx, key, payload, CacheTTL); err != nil {
				slog.Warn("Report cache write failed", "error", err)
			}
		}
		output.CachedAt = nil
	}

	return output, nil
}

// validateCriteria rejects criteria no report can be built for.
func validateCriteria(c timesheet.Criteria) error {
	if !c.QuickFilter.Valid() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidQuickFilter,
			"unknown quick filter",
			domainerror.ErrInvalidQuickFilter,
		)
	}
	if c.DateRange.Start != nil && c.DateRange.End != nil && c.DateRange.Start.After(*c.DateRange.End) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"start date must not be after end date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// groupReports converts aggregation rows to output rows with percentages of
// the report's hour total.
func groupReports(groups []timesheet.GroupTotal, totalHours decimal.Decimal) []GroupReport {
	rows := make([]GroupReport, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, GroupReport{
			Key:        g.Key,
			TotalHours: g.TotalHours,
			TotalCost:  g.TotalCost,
			EntryCount: g.EntryCount,
			Percentage: timesheet.Percentage(g.TotalHours, totalHours),
		})
	}
	return rows
}

// cacheKey fingerprints the criteria and reference day. Criteria are
// normalized first, so sentinel spellings such as "all" and "" share a key.
func cacheKey(c timesheet.Criteria, referenceDate time.Time) string {
	payload, _ := json.Marshal(struct {
		Criteria timesheet.Criteria `json:"criteria"`
		Day      string             `json:"day"`
	}{c.Normalized(), referenceDate.Format("2006-01-02")})
	sum := sha256.Sum256(payload)
	return "report:" + hex.EncodeToString(sum[:])
}
