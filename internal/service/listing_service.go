package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sellquick/internal/ai"
	"sellquick/internal/cache"
	apperrors "sellquick/internal/errors"
	"sellquick/internal/model"
	"sellquick/internal/repository"
)

const (
	listingCacheTTL    = 5 * time.Minute
	categoriesCacheTTL = 5 * time.Minute
	categoriesCacheKey = "categories"
)

// CreateListingInput is the owner-supplied part of a new listing. Category,
// micro-niche, budget tier, analysis text and trust score come from the
// analysis call.
type CreateListingInput struct {
	Name        string
	Description string
	Contact     string
	Location    string
	Website     string
	Lat         *float64
	Lng         *float64
}

// UpdateListingInput carries the owner-editable fields. Nil means unchanged.
// Setting HasMemberDiscount to true is only accepted at verification level 3.
type UpdateListingInput struct {
	Name              *string
	Description       *string
	Contact           *string
	Location          *string
	Website           *string
	MicroNiche        *string
	BudgetRange       *model.Budget
	HasMemberDiscount *bool
}

// ListingService handles directory operations.
type ListingService interface {
	Create(ctx context.Context, ownerUID string, in CreateListingInput) (*model.Listing, error)
	List(ctx context.Context, filter repository.ListingFilter) ([]model.Listing, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	Update(ctx context.Context, id uuid.UUID, actorUID string, in UpdateListingInput) (*model.Listing, error)
	Vouch(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
	SetVerificationLevel(ctx context.Context, id uuid.UUID, level int) error
}

type listingService struct {
	repo     repository.ListingRepository
	aiClient ai.Client
	cache    *cache.Client
	logger   *zap.Logger
}

// NewListingService creates a new listing service.
func NewListingService(repo repository.ListingRepository, aiClient ai.Client, cache *cache.Client, logger *zap.Logger) ListingService {
	return &listingService{
		repo:     repo,
		aiClient: aiClient,
		cache:    cache,
		logger:   logger,
	}
}

func (s *listingService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("listing:%s", id.String())
}

// Create enriches the input through the analysis call and persists the
// listing. Analysis failures never abort creation; the deterministic
// fallback fills the derived fields instead.
func (s *listingService) Create(ctx context.Context, ownerUID string, in CreateListingInput) (*model.Listing, error) {
	analysis, err := s.aiClient.Analyze(ctx, in.Name, in.Description)
	if err != nil {
		s.logger.Warn("listing analysis failed, using fallback",
			zap.String("name", in.Name), zap.Error(err))
		analysis = ai.FallbackAnalysis(in.Name, in.Description)
	}

	trustScore := analysis.TrustScore
	listing := &model.Listing{
		Name:              in.Name,
		Category:          analysis.Category,
		MicroNiche:        analysis.MicroNiche,
		Description:       in.Description,
		BudgetRange:       analysis.BudgetRange,
		Contact:           in.Contact,
		Location:          in.Location,
		Website:           in.Website,
		Lat:               in.Lat,
		Lng:               in.Lng,
		VerificationLevel: model.VerificationBasic,
		Analysis:          analysis.Analysis,
		TrustScore:        &trustScore,
		OwnerUID:          ownerUID,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	_ = s.cache.Delete(ctx, categoriesCacheKey)
	return listing, nil
}

// List returns listings matching the filter.
func (s *listingService) List(ctx context.Context, filter repository.ListingFilter) ([]model.Listing, error) {
	return s.repo.Find(ctx, filter)
}

// Get retrieves a listing by ID with caching.
func (s *listingService) Get(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Listing
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(listing); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, listingCacheTTL)
	}
	return listing, nil
}

// Update applies the owner's draft to the editable field whitelist. The id,
// owner, vouch count and verification level are not reachable through this
// path.
func (s *listingService) Update(ctx context.Context, id uuid.UUID, actorUID string, in UpdateListingInput) (*model.Listing, error) {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.OwnerUID != actorUID {
		return nil, apperrors.ErrNotOwner
	}

	fields := make(map[string]any)
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Contact != nil {
		fields["contact"] = *in.Contact
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Website != nil {
		fields["website"] = *in.Website
	}
	if in.MicroNiche != nil {
		fields["micro_niche"] = *in.MicroNiche
	}
	if in.BudgetRange != nil {
		if !in.BudgetRange.Valid() {
			return nil, apperrors.ErrInvalidBudgetRange
		}
		fields["budget_range"] = *in.BudgetRange
	}
	if in.HasMemberDiscount != nil {
		if *in.HasMemberDiscount && listing.VerificationLevel != model.VerificationMax {
			return nil, apperrors.ErrDiscountRequiresVerified
		}
		fields["has_member_discount"] = *in.HasMemberDiscount
	}

	if len(fields) == 0 {
		return listing, nil
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, categoriesCacheKey)

	return s.repo.FindByID(ctx, id)
}

// Vouch atomically increments the vouch count.
func (s *listingService) Vouch(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.IncrementVouch(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrListingNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Categories returns the distinct category labels, cached briefly.
func (s *listingService) Categories(ctx context.Context) ([]string, error) {
	if data, _ := s.cache.Get(ctx, categoriesCacheKey); data != nil {
		var cached []string
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, categoriesCacheKey, payload, categoriesCacheTTL)
	}
	return categories, nil
}

// SetVerificationLevel raises or lowers the trust tier. Lowering below level
// 3 is rejected while the member discount is set, keeping the discount
// invariant intact from this side too.
func (s *listingService) SetVerificationLevel(ctx context.Context, id uuid.UUID, level int) error {
	if level < model.VerificationBasic || level > model.VerificationMax {
		return apperrors.ErrInvalidVerificationLevel
	}

	listing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if listing.HasMemberDiscount && level != model.VerificationMax {
		return apperrors.ErrDiscountRequiresVerified
	}

	if err := s.repo.UpdateFields(ctx, id, map[string]any{"verification_level": level}); err != nil {
		return fmt.Errorf("update verification level: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
