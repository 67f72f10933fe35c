package service

import (
	"context"

	"go.uber.org/zap"

	"sellquick/internal/ai"
	"sellquick/internal/flow"
	"sellquick/internal/model"
	"sellquick/internal/repository"
)

// CurationResult pairs the matched listings, in match order, with the
// model's rationale. It is ephemeral; nothing here is persisted.
type CurationResult struct {
	Matches   []model.Listing `json:"matches"`
	Rationale string          `json:"rationale"`
}

// CurationService selects a small matched subset of listings for a stated
// need. AI failures are absorbed: the caller always gets a result.
type CurationService interface {
	CurateFreeText(ctx context.Context, query string) (*CurationResult, error)
	CurateWizard(ctx context.Context, answers flow.WizardAnswers) (*CurationResult, error)
}

type curationService struct {
	repo     repository.ListingRepository
	aiClient ai.Client
	logger   *zap.Logger
}

// NewCurationService creates a new curation service.
func NewCurationService(repo repository.ListingRepository, aiClient ai.Client, logger *zap.Logger) CurationService {
	return &curationService{
		repo:     repo,
		aiClient: aiClient,
		logger:   logger,
	}
}

// CurateFreeText matches listings against a free-text need.
func (s *curationService) CurateFreeText(ctx context.Context, query string) (*CurationResult, error) {
	return s.curate(ctx, ai.CurationQuery{FreeText: query})
}

// CurateWizard matches listings against the completed wizard answers.
func (s *curationService) CurateWizard(ctx context.Context, answers flow.WizardAnswers) (*CurationResult, error) {
	return s.curate(ctx, ai.CurationQuery{
		Category: answers.Category,
		Priority: answers.Priority,
		Budget:   answers.Budget,
	})
}

func (s *curationService) curate(ctx context.Context, query ai.CurationQuery) (*CurationResult, error) {
	candidates, err := s.repo.Find(ctx, repository.ListingFilter{})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Listing, len(candidates))
	projections := make([]ai.Candidate, 0, len(candidates))
	for _, l := range candidates {
		id := l.ID.String()
		byID[id] = l
		projections = append(projections, ai.Candidate{
			ID:     id,
			Niche:  l.MicroNiche,
			Tier:   l.VerificationLevel,
			Budget: l.BudgetRange,
		})
	}

	curation, err := s.aiClient.Curate(ctx, query, projections)
	if err != nil {
		// A single failure falls straight back; no retry.
		s.logger.Warn("curation call failed, using fallback", zap.Error(err))
		curation = ai.FallbackCuration(projections)
	}

	// Drop ids the model invented; match order is preserved.
	matches := make([]model.Listing, 0, len(curation.MatchedIDs))
	for _, id := range curation.MatchedIDs {
		if listing, ok := byID[id]; ok {
			matches = append(matches, listing)
		}
	}

	return &CurationResult{
		Matches:   matches,
		Rationale: curation.Rationale,
	}, nil
}
