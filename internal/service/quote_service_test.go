package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"sellquick/internal/flow"
	"sellquick/internal/model"
)

func TestQuoteService_Submit(t *testing.T) {
	sub := QuoteSubmission{
		Details:   "5 silk suits need delicate dry cleaning",
		Budget:    "100",
		Deadline:  "2026-09-15",
		TargetIDs: []string{"a", "b"},
	}

	mockRepo := new(MockQuoteRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.QuoteRequest")).Return(nil)

	svc := NewQuoteService(mockRepo, zap.NewNop())
	quote, err := svc.Submit(context.Background(), "requester-1", sub)

	assert.NoError(t, err)
	assert.Equal(t, "requester-1", quote.RequesterUID)
	assert.Equal(t, sub.Details, quote.Details)
	assert.Equal(t, sub.Budget, quote.Budget)
	assert.Equal(t, sub.Deadline, quote.Deadline)
	assert.JSONEq(t, `["a","b"]`, quote.TargetIDs)
	mockRepo.AssertExpectations(t)
}

func TestQuoteService_SubmitRejectsBlankSteps(t *testing.T) {
	tests := []struct {
		name string
		sub  QuoteSubmission
	}{
		{name: "missing details", sub: QuoteSubmission{Budget: "100", Deadline: "2026-09-15"}},
		{name: "missing budget", sub: QuoteSubmission{Details: "details", Deadline: "2026-09-15"}},
		{name: "missing deadline", sub: QuoteSubmission{Details: "details", Budget: "100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockQuoteRepository)
			svc := NewQuoteService(mockRepo, zap.NewNop())

			_, err := svc.Submit(context.Background(), "requester-1", tt.sub)

			assert.ErrorIs(t, err, flow.ErrEmptyInput)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestQuoteService_SubmitStoreError(t *testing.T) {
	mockRepo := new(MockQuoteRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	svc := NewQuoteService(mockRepo, zap.NewNop())
	_, err := svc.Submit(context.Background(), "requester-1", QuoteSubmission{
		Details:  "details",
		Budget:   "100",
		Deadline: "tomorrow",
	})

	assert.Error(t, err)
}

func TestQuoteService_ListMine(t *testing.T) {
	mockRepo := new(MockQuoteRepository)
	mockRepo.On("ListByRequester", mock.Anything, "requester-1").
		Return([]model.QuoteRequest{{RequesterUID: "requester-1", Details: "details"}}, nil)

	svc := NewQuoteService(mockRepo, zap.NewNop())
	quotes, err := svc.ListMine(context.Background(), "requester-1")

	assert.NoError(t, err)
	assert.Len(t, quotes, 1)
	assert.Equal(t, "details", quotes[0].Details)
}
