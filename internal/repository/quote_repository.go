package repository

import (
	"context"

	"gorm.io/gorm"

	"sellquick/internal/model"
)

// QuoteRepository defines quote request persistence operations.
type QuoteRepository interface {
	Create(ctx context.Context, quote *model.QuoteRequest) error
	ListByRequester(ctx context.Context, requesterUID string) ([]model.QuoteRequest, error)
}

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository.
func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

// Create persists a new quote request.
func (r *quoteRepository) Create(ctx context.Context, quote *model.QuoteRequest) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

// ListByRequester lists quote requests submitted by the given user, newest first.
func (r *quoteRepository) ListByRequester(ctx context.Context, requesterUID string) ([]model.QuoteRequest, error) {
	var quotes []model.QuoteRequest
	if err := r.db.WithContext(ctx).
		Where("requester_uid = ?", requesterUID).
		Order("created_at DESC").
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}
