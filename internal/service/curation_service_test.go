package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"sellquick/internal/ai"
	"sellquick/internal/flow"
	"sellquick/internal/model"
	"sellquick/internal/repository"
)

func curationFixtures() ([]model.Listing, []uuid.UUID) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	listings := []model.Listing{
		{ID: ids[0], Name: "Cybersecurity Shield", VerificationLevel: 3, MicroNiche: "Penetration Testing", BudgetRange: model.BudgetHigh},
		{ID: ids[1], Name: "Master Tailors", VerificationLevel: 2, MicroNiche: "Bespoke Suit Alterations", BudgetRange: model.BudgetMedium},
		{ID: ids[2], Name: "Swift Wash Hub", VerificationLevel: 1, MicroNiche: "Bulk Industrial Laundry", BudgetRange: model.BudgetLow},
		{ID: ids[3], Name: "Legal Eagles", VerificationLevel: 3, MicroNiche: "Startup Incorporation", BudgetRange: model.BudgetHigh},
	}
	return listings, ids
}

func TestCurationService_ModelPicksMatches(t *testing.T) {
	listings, ids := curationFixtures()

	mockRepo := new(MockListingRepository)
	mockRepo.On("Find", mock.Anything, repository.ListingFilter{}).Return(listings, nil)

	mockAI := new(MockAIClient)
	mockAI.On("Curate", mock.Anything, mock.Anything, mock.Anything).Return(ai.Curation{
		MatchedIDs: []string{ids[1].String(), ids[3].String()},
		Rationale:  "Both specialize in exactly this need.",
	}, nil)

	svc := NewCurationService(mockRepo, mockAI, zap.NewNop())
	result, err := svc.CurateFreeText(context.Background(), "I need a suit altered")

	assert.NoError(t, err)
	assert.Equal(t, "Both specialize in exactly this need.", result.Rationale)
	// Match order from the model is preserved.
	assert.Len(t, result.Matches, 2)
	assert.Equal(t, "Master Tailors", result.Matches[0].Name)
	assert.Equal(t, "Legal Eagles", result.Matches[1].Name)
}

func TestCurationService_DropsUnknownIDs(t *testing.T) {
	listings, ids := curationFixtures()

	mockRepo := new(MockListingRepository)
	mockRepo.On("Find", mock.Anything, repository.ListingFilter{}).Return(listings, nil)

	mockAI := new(MockAIClient)
	mockAI.On("Curate", mock.Anything, mock.Anything, mock.Anything).Return(ai.Curation{
		MatchedIDs: []string{"invented-by-the-model", ids[0].String()},
		Rationale:  "Matched.",
	}, nil)

	svc := NewCurationService(mockRepo, mockAI, zap.NewNop())
	result, err := svc.CurateFreeText(context.Background(), "anything")

	assert.NoError(t, err)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, ids[0], result.Matches[0].ID)
}

func TestCurationService_FallbackOnAIError(t *testing.T) {
	listings, ids := curationFixtures()

	mockRepo := new(MockListingRepository)
	mockRepo.On("Find", mock.Anything, repository.ListingFilter{}).Return(listings, nil)

	mockAI := new(MockAIClient)
	mockAI.On("Curate", mock.Anything, mock.Anything, mock.Anything).
		Return(ai.Curation{}, errors.New("endpoint unavailable"))

	svc := NewCurationService(mockRepo, mockAI, zap.NewNop())
	result, err := svc.CurateWizard(context.Background(), flow.WizardAnswers{
		Category: "Laundry",
		Priority: "Speed (Urgent)",
		Budget:   model.BudgetMedium,
	})

	// Fallback: top 3 by verification level, original order among ties,
	// irrespective of the query content.
	assert.NoError(t, err)
	assert.Len(t, result.Matches, 3)
	assert.Equal(t, ids[0], result.Matches[0].ID)
	assert.Equal(t, ids[3], result.Matches[1].ID)
	assert.Equal(t, ids[1], result.Matches[2].ID)
	assert.Equal(t, "Selected top 3 providers by verification level.", result.Rationale)
}

func TestCurationService_WizardQueryCarriesAnswers(t *testing.T) {
	listings, _ := curationFixtures()

	mockRepo := new(MockListingRepository)
	mockRepo.On("Find", mock.Anything, repository.ListingFilter{}).Return(listings, nil)

	mockAI := new(MockAIClient)
	mockAI.On("Curate", mock.Anything, ai.CurationQuery{
		Category: "Laundry",
		Priority: "Speed (Urgent)",
		Budget:   model.BudgetMedium,
	}, mock.Anything).Return(ai.Curation{MatchedIDs: nil, Rationale: "none"}, nil)

	svc := NewCurationService(mockRepo, mockAI, zap.NewNop())
	_, err := svc.CurateWizard(context.Background(), flow.WizardAnswers{
		Category: "Laundry",
		Priority: "Speed (Urgent)",
		Budget:   model.BudgetMedium,
	})

	assert.NoError(t, err)
	mockAI.AssertExpectations(t)
}

func TestCurationService_StoreErrorSurfaces(t *testing.T) {
	mockRepo := new(MockListingRepository)
	mockRepo.On("Find", mock.Anything, repository.ListingFilter{}).
		Return(nil, errors.New("connection refused"))

	svc := NewCurationService(mockRepo, new(MockAIClient), zap.NewNop())
	_, err := svc.CurateFreeText(context.Background(), "anything")

	assert.Error(t, err)
}
