package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sellquick/internal/cache"
	apperrors "sellquick/internal/errors"
	"sellquick/internal/model"
	"sellquick/internal/repository"
)

// SeedService populates an empty directory with the example catalog.
type SeedService interface {
	SeedIfEmpty(ctx context.Context) (seeded bool, err error)
}

type seedService struct {
	repo    repository.ListingRepository
	catalog func() []model.Listing
	cache   *cache.Client
	logger  *zap.Logger
}

// NewSeedService creates a new seed service with the given catalog source.
func NewSeedService(repo repository.ListingRepository, catalog func() []model.Listing, cache *cache.Client, logger *zap.Logger) SeedService {
	return &seedService{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
		logger:  logger,
	}
}

// SeedIfEmpty inserts the catalog when the directory has no listings. The
// batch is guarded by the marker row, so a concurrent cold start that wins
// the race makes this call a no-op rather than a duplicate.
func (s *seedService) SeedIfEmpty(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count listings: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	listings := s.catalog()
	if err := s.repo.SeedBatch(ctx, listings); err != nil {
		if errors.Is(err, apperrors.ErrAlreadySeeded) {
			s.logger.Info("seed skipped, catalog already present")
			return false, nil
		}
		return false, fmt.Errorf("seed catalog: %w", err)
	}

	_ = s.cache.Delete(ctx, categoriesCacheKey)
	s.logger.Info("seeded example catalog", zap.Int("listings", len(listings)))
	return true, nil
}
