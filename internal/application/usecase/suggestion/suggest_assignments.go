// Package suggestion contains AI project assignment use cases.
package suggestion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"golang.org/x/sync/errgroup"
)

// MaxEntriesPerRequest caps how many unassigned entries go to the AI in one
// round. Keeping this small ensures Gemini responds within timeout.
const MaxEntriesPerRequest = 40

// SuggestAssignmentsInput represents the input for requesting AI suggestions.
type SuggestAssignmentsInput struct {
	CollaboratorID uuid.UUID
}

// SuggestAssignmentsOutput represents the output of requesting AI suggestions.
type SuggestAssignmentsOutput struct {
	Suggestions []*entity.AssignmentSuggestion
}

// SuggestAssignmentsUseCase asks the AI to propose projects for unassigned
// entries and persists the proposals for review.
type SuggestAssignmentsUseCase struct {
	entryRepo      adapter.TimeEntryRepository
	projectRepo    adapter.ProjectRepository
	categoryRepo   adapter.CategoryRepository
	suggestionRepo adapter.SuggestionRepository
	aiService      adapter.AIAssignmentService
}

// NewSuggestAssignmentsUseCase creates a new SuggestAssignmentsUseCase instance.
func NewSuggestAssignmentsUseCase(
	entryRepo adapter.TimeEntryRepository,
	projectRepo adapter.ProjectRepository,
	categoryRepo adapter.CategoryRepository,
	suggestionRepo adapter.SuggestionRepository,
	aiService adapter.AIAssignmentService,
) *SuggestAssignmentsUseCase {
	return &SuggestAssignmentsUseCase{
		entryRepo:      entryRepo,
		projectRepo:    projectRepo,
		categoryRepo:   categoryRepo,
		suggestionRepo: suggestionRepo,
		aiService:      aiService,
	}
}

// Execute runs one suggestion round for the collaborator's unassigned entries.
// A new round replaces any pending suggestions from earlier rounds.
func (uc *SuggestAssignmentsUseCase) Execute(ctx context.Context, input SuggestAssignmentsInput) (*SuggestAssignmentsOutput, error) {
	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeAIServiceUnavailable,
			"AI service is not configured",
			domainerror.ErrAIServiceUnavailable,
		)
	}

	var (
		unassigned []*entity.TimeEntryWithRelations
		projects   []*entity.Project
		categories []*entity.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		unassigned, err = uc.entryRepo.FindAllByFilter(gctx, adapter.TimeEntryFilter{
			CollaboratorID: &input.CollaboratorID,
			Unassigned:     true,
		})
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = uc.projectRepo.FindAll(gctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = uc.categoryRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to gather suggestion data: %w", err)
	}

	if len(unassigned) == 0 {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeNoUnassignedEntries,
			"no entries without a project",
			domainerror.ErrNoUnassignedEntries,
		)
	}
	if len(unassigned) > MaxEntriesPerRequest {
		unassigned = unassigned[:MaxEntriesPerRequest]
	}

	request := buildRequest(input.CollaboratorID, unassigned, projects, categories)

	results, err := uc.aiService.SuggestAssignments(ctx, request)
	if err != nil {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeAIServiceUnavailable,
			"AI suggestion request failed",
			err,
		)
	}

	// Replace earlier pending suggestions with this round's results
	if err := uc.suggestionRepo.DeletePendingByCollaborator(ctx, input.CollaboratorID); err != nil {
		return nil, fmt.Errorf("failed to clear pending suggestions: %w", err)
	}

	now := time.Now().UTC()
	suggestions := make([]*entity.AssignmentSuggestion, 0, len(results))
	for _, r := range results {
		projectID := r.SuggestedProjectID
		suggestions = append(suggestions, entity.NewAssignmentSuggestion(
			input.CollaboratorID,
			r.EntryID,
			&projectID,
			r.SuggestedCategoryID,
			r.MatchType,
			r.MatchKeyword,
			r.AffectedEntryIDs,
			r.Confidence,
			r.Reasoning,
			now,
		))
	}

	if len(suggestions) > 0 {
		if err := uc.suggestionRepo.BulkCreate(ctx, suggestions); err != nil {
			return nil, fmt.Errorf("failed to store suggestions: %w", err)
		}
	}

	return &SuggestAssignmentsOutput{
		Suggestions: suggestions,
	}, nil
}

// buildRequest shapes entries and projects for the AI prompt.
func buildRequest(
	collaboratorID uuid.UUID,
	entries []*entity.TimeEntryWithRelations,
	projects []*entity.Project,
	categories []*entity.Category,
) *adapter.AIAssignmentRequest {
	byProject := make(map[uuid.UUID][]adapter.CategoryForAI, len(projects))
	for _, c := range categories {
		byProject[c.ProjectID] = append(byProject[c.ProjectID], adapter.CategoryForAI{
			ID:   c.ID,
			Name: c.Name,
		})
	}

	request := &adapter.AIAssignmentRequest{CollaboratorID: collaboratorID}
	for _, e := range entries {
		request.Entries = append(request.Entries, &adapter.EntryForAI{
			ID:      e.Entry.ID,
			Date:    e.Entry.Date.Format("2006-01-02"),
			Hours:   e.Entry.DurationHours.StringFixed(2),
			Comment: e.Entry.Comment,
		})
	}
	for _, p := range projects {
		request.Projects = append(request.Projects, &adapter.ProjectForAI{
			ID:         p.ID,
			Name:       p.Name,
			Categories: byProject[p.ID],
		})
	}
	return request
}
