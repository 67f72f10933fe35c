package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	analysisModel = "gemini-3-flash-preview"
	curationModel = "gemini-3-pro-preview"
)

// geminiClient talks to the Gemini API requesting strict JSON responses
// validated against a declared schema. A single failed call is an error;
// callers fall back, no retries happen here.
type geminiClient struct {
	client *genai.Client
}

var _ Client = (*geminiClient)(nil)

func newGeminiClient(ctx context.Context, apiKey string) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &geminiClient{client: client}, nil
}

// Analyze derives category, micro-niche, budget tier and a trust score from
// a listing's name and free-text details.
func (g *geminiClient) Analyze(ctx context.Context, name, details string) (Analysis, error) {
	prompt := fmt.Sprintf(
		"Analyze this business: %s. Details: %s. "+
			"Define its MICRO-NICHE (e.g. 'Silk Specialists', 'Overnight Express', 'Bulk Commercial'). "+
			"Assign a trust score (1-100) based on detail depth.",
		name, details,
	)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category":   {Type: genai.TypeString},
			"microNiche": {Type: genai.TypeString},
			"budgetRange": {
				Type: genai.TypeString,
				Enum: []string{"Low", "Medium", "High"},
			},
			"analysis":   {Type: genai.TypeString},
			"trustScore": {Type: genai.TypeNumber},
		},
		Required: []string{"category", "microNiche", "budgetRange", "analysis"},
	}

	var out Analysis
	if err := g.generateJSON(ctx, analysisModel, prompt, schema, &out); err != nil {
		return Analysis{}, err
	}
	if !out.BudgetRange.Valid() {
		return Analysis{}, fmt.Errorf("analysis returned budget range %q outside enum", out.BudgetRange)
	}
	return out, nil
}

// Curate asks the model to pick the best matches among the candidate
// projections for the given query.
func (g *geminiClient) Curate(ctx context.Context, query CurationQuery, candidates []Candidate) (Curation, error) {
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return Curation{}, fmt.Errorf("marshal query: %w", err)
	}
	candidatesJSON, err := json.Marshal(candidates)
	if err != nil {
		return Curation{}, fmt.Errorf("marshal candidates: %w", err)
	}

	prompt := fmt.Sprintf(
		"User Needs: %s. Filter these businesses: %s. "+
			"Pick the 3 best matches. Prioritize higher tiers but ensure niche relevance.",
		queryJSON, candidatesJSON,
	)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"matchedIds": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"rationale": {Type: genai.TypeString},
		},
		Required: []string{"matchedIds", "rationale"},
	}

	var out Curation
	if err := g.generateJSON(ctx, curationModel, prompt, schema, &out); err != nil {
		return Curation{}, err
	}
	return out, nil
}

func (g *geminiClient) generateJSON(ctx context.Context, model, prompt string, schema *genai.Schema, out any) error {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return fmt.Errorf("empty model response")
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("parse model response: %w", err)
	}
	return nil
}
