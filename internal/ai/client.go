package ai

import (
	"context"

	"go.uber.org/zap"

	"sellquick/internal/model"
)

// Analysis is the AI-derived enrichment of a new listing.
type Analysis struct {
	Category    string       `json:"category"`
	MicroNiche  string       `json:"microNiche"`
	BudgetRange model.Budget `json:"budgetRange"`
	Analysis    string       `json:"analysis"`
	TrustScore  int          `json:"trustScore"`
}

// Candidate is the compact projection of a listing sent with a curation
// request. The full record stays local; only these four fields bound the
// payload size.
type Candidate struct {
	ID     string       `json:"id"`
	Niche  string       `json:"niche"`
	Tier   int          `json:"tier"`
	Budget model.Budget `json:"budget"`
}

// CurationQuery is either free text or the accumulated wizard answers.
type CurationQuery struct {
	FreeText string       `json:"freeText,omitempty"`
	Category string       `json:"category,omitempty"`
	Priority string       `json:"priority,omitempty"`
	Budget   model.Budget `json:"budget,omitempty"`
}

// Curation is an ordered set of matched listing ids plus a rationale.
type Curation struct {
	MatchedIDs []string `json:"matchedIds"`
	Rationale  string   `json:"rationale"`
}

// Client issues the two model calls. Implementations must be safe for
// concurrent use.
type Client interface {
	Analyze(ctx context.Context, name, details string) (Analysis, error)
	Curate(ctx context.Context, query CurationQuery, candidates []Candidate) (Curation, error)
}

// New selects the client implementation once, at construction: with an API
// key configured it returns the Gemini-backed client, without one it returns
// the deterministic mock and never attempts the network.
func New(ctx context.Context, apiKey string, logger *zap.Logger) (Client, error) {
	if apiKey == "" {
		logger.Info("no Gemini API key configured, using deterministic mock for analysis and curation")
		return NewMockClient(), nil
	}
	return newGeminiClient(ctx, apiKey)
}
