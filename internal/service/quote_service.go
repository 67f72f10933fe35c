package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"sellquick/internal/flow"
	"sellquick/internal/model"
	"sellquick/internal/repository"
)

// QuoteSubmission is the accumulated quote flow input plus the target set.
type QuoteSubmission struct {
	Details   string
	Budget    string
	Deadline  string
	TargetIDs []string
}

// QuoteService records quote requests. Actually notifying the providers is a
// stub; the persisted record with its confirmation is the deliverable.
type QuoteService interface {
	Submit(ctx context.Context, requesterUID string, sub QuoteSubmission) (*model.QuoteRequest, error)
	ListMine(ctx context.Context, requesterUID string) ([]model.QuoteRequest, error)
}

type quoteService struct {
	repo   repository.QuoteRepository
	logger *zap.Logger
}

// NewQuoteService creates a new quote service.
func NewQuoteService(repo repository.QuoteRepository, logger *zap.Logger) QuoteService {
	return &quoteService{repo: repo, logger: logger}
}

// Submit replays the submission through the quote flow so the step
// preconditions hold server-side, then persists the request.
func (s *quoteService) Submit(ctx context.Context, requesterUID string, sub QuoteSubmission) (*model.QuoteRequest, error) {
	f := flow.NewQuoteFlow()
	for _, input := range []string{sub.Details, sub.Budget, sub.Deadline} {
		if err := f.Advance(input); err != nil {
			return nil, err
		}
	}
	form, err := f.Result()
	if err != nil {
		return nil, err
	}

	targets, err := json.Marshal(sub.TargetIDs)
	if err != nil {
		return nil, fmt.Errorf("marshal target ids: %w", err)
	}

	quote := &model.QuoteRequest{
		RequesterUID: requesterUID,
		Details:      form.Details,
		Budget:       form.Budget,
		Deadline:     form.Deadline,
		TargetIDs:    string(targets),
	}
	if err := s.repo.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("create quote request: %w", err)
	}

	s.notifyProviders(quote, len(sub.TargetIDs))
	return quote, nil
}

// ListMine lists the caller's quote requests.
func (s *quoteService) ListMine(ctx context.Context, requesterUID string) ([]model.QuoteRequest, error) {
	return s.repo.ListByRequester(ctx, requesterUID)
}

// notifyProviders is the delivery stub. TODO: wire a real outbound channel
// (email or in-app inbox) once providers have one.
func (s *quoteService) notifyProviders(quote *model.QuoteRequest, targetCount int) {
	s.logger.Info("quote request recorded",
		zap.String("quote_id", quote.ID.String()),
		zap.Int("providers", targetCount))
}
