// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/time-tracker/backend/internal/application/adapter"
	"github.com/time-tracker/backend/internal/domain/entity"
)

// GeminiService implements the AIAssignmentService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestAssignments analyzes unassigned entries and returns project suggestions.
func (s *GeminiService) SuggestAssignments(ctx context.Context, request *adapter.AIAssignmentRequest) ([]*adapter.AIAssignmentResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	results, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return results, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.AIAssignmentRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are an assistant that assigns time tracking entries to projects. Your task is to analyze time entries that have no project yet and match them to the most likely project based on their comments.

For each entry you must:
1. Identify a keyword pattern in the comment that similar entries share
2. Pick the best matching project from the list below, and optionally one of its categories
3. Identify the match type: "exact", "startsWith", or "contains"

IMPORTANT RULES:
- Only suggest projects from the list below; never invent project or category IDs
- A suggested category must belong to the suggested project
- The keyword must be specific enough to avoid false positives but general enough to capture similar entries
- Group entries that match the same keyword into a single suggestion with all affected IDs
- Skip entries you cannot match with reasonable confidence

PROJECTS:
`)

	for _, p := range request.Projects {
		sb.WriteString(fmt.Sprintf("- ID: %s, Name: %s\n", p.ID, p.Name))
		for _, c := range p.Categories {
			sb.WriteString(fmt.Sprintf("  - Category ID: %s, Name: %s\n", c.ID, c.Name))
		}
	}

	sb.WriteString("\nENTRIES TO ASSIGN:\n")
	for _, e := range request.Entries {
		sb.WriteString(fmt.Sprintf("- ID: %s, Date: %s, Hours: %s, Comment: \"%s\"\n",
			e.ID, e.Date, e.Hours, e.Comment))
	}

	sb.WriteString(`

Respond with a JSON array of suggestions. Each suggestion must have:
{
  "entry_id": "uuid of the primary entry",
  "suggested_project_id": "uuid of the project",
  "suggested_category_id": "uuid of the category or null",
  "match_type": "contains" | "startsWith" | "exact",
  "match_keyword": "keyword/pattern used for matching",
  "affected_entry_ids": ["uuids of other entries matching the pattern"],
  "confidence": 0.0-1.0,
  "reasoning": "brief explanation"
}

RESPONSE FORMAT: Return only the JSON array, no additional text.
`)

	return sb.String()
}

// geminiAssignment represents the raw response from Gemini.
type geminiAssignment struct {
	EntryID             string   `json:"entry_id"`
	SuggestedProjectID  string   `json:"suggested_project_id"`
	SuggestedCategoryID *string  `json:"suggested_category_id"`
	MatchType           string   `json:"match_type"`
	MatchKeyword        string   `json:"match_keyword"`
	AffectedEntryIDs    []string `json:"affected_entry_ids"`
	Confidence          float64  `json:"confidence"`
	Reasoning           string   `json:"reasoning"`
}

// parseResponse parses the Gemini response into AIAssignmentResults.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.AIAssignmentResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var assignments []geminiAssignment
	if err := json.Unmarshal([]byte(textContent), &assignments); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	results := make([]*adapter.AIAssignmentResult, 0, len(assignments))
	for _, a := range assignments {
		entryID, err := uuid.Parse(a.EntryID)
		if err != nil {
			continue // Skip invalid IDs
		}
		projectID, err := uuid.Parse(a.SuggestedProjectID)
		if err != nil {
			continue
		}

		result := &adapter.AIAssignmentResult{
			EntryID:            entryID,
			SuggestedProjectID: projectID,
			MatchType:          entity.MatchType(a.MatchType),
			MatchKeyword:       a.MatchKeyword,
			Confidence:         a.Confidence,
			Reasoning:          a.Reasoning,
		}

		if a.SuggestedCategoryID != nil && *a.SuggestedCategoryID != "" {
			if catID, err := uuid.Parse(*a.SuggestedCategoryID); err == nil {
				result.SuggestedCategoryID = &catID
			}
		}

		result.AffectedEntryIDs = make([]uuid.UUID, 0, len(a.AffectedEntryIDs))
		for _, idStr := range a.AffectedEntryIDs {
			if id, err := uuid.Parse(idStr); err == nil {
				result.AffectedEntryIDs = append(result.AffectedEntryIDs, id)
			}
		}

		switch result.MatchType {
		case entity.MatchTypeContains, entity.MatchTypeStartsWith, entity.MatchTypeExact:
			// Valid
		default:
			result.MatchType = entity.MatchTypeContains
		}

		results = append(results, result)
	}

	return results, nil
}

// Ensure implementation satisfies the interface.
var _ adapter.AIAssignmentService = (*GeminiService)(nil)
