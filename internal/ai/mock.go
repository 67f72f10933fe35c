package ai

import "context"

// MockClient answers both call shapes locally with the deterministic
// fallbacks. It never touches the network and never fails.
type MockClient struct{}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a mock client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Analyze returns the fixed fallback analysis.
func (m *MockClient) Analyze(ctx context.Context, name, details string) (Analysis, error) {
	return FallbackAnalysis(name, details), nil
}

// Curate returns the fallback curation over the given candidates.
func (m *MockClient) Curate(ctx context.Context, query CurationQuery, candidates []Candidate) (Curation, error) {
	return FallbackCuration(candidates), nil
}
