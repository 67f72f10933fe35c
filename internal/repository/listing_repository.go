package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "sellquick/internal/errors"
	"sellquick/internal/model"
)

const seedMarkerKey = "catalog-v1"

// ListingFilter is a conjunction of exact-match constraints. Zero values
// mean "no constraint". Cursor is the value returned by EncodeCursor for the
// last listing of the previous page.
type ListingFilter struct {
	Category          string
	MicroNiche        string
	BudgetRange       model.Budget
	Location          string
	VerificationLevel int
	OwnerUID          string
	Limit             int
	Cursor            string
}

// EncodeCursor builds the pagination cursor pointing past the given listing.
func EncodeCursor(l *model.Listing) string {
	return fmt.Sprintf("%d:%s", l.VerificationLevel, l.ID)
}

// ListingRepository defines listing persistence operations.
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	Find(ctx context.Context, filter ListingFilter) ([]model.Listing, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	IncrementVouch(ctx context.Context, id uuid.UUID) error
	DistinctCategories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	SeedBatch(ctx context.Context, listings []model.Listing) error
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// Create persists a new listing. The id is assigned in BeforeCreate.
func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// Find lists listings matching the filter, ordered by verification level
// descending with id as the tie break so cursors stay stable. Zero matches
// is an empty slice, not an error.
func (r *listingRepository) Find(ctx context.Context, filter ListingFilter) ([]model.Listing, error) {
	q := r.db.WithContext(ctx).Model(&model.Listing{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MicroNiche != "" {
		q = q.Where("micro_niche = ?", filter.MicroNiche)
	}
	if filter.BudgetRange != "" {
		q = q.Where("budget_range = ?", filter.BudgetRange)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.VerificationLevel != 0 {
		q = q.Where("verification_level = ?", filter.VerificationLevel)
	}
	if filter.OwnerUID != "" {
		q = q.Where("owner_uid = ?", filter.OwnerUID)
	}

	if filter.Cursor != "" {
		level, id, ok := strings.Cut(filter.Cursor, ":")
		if !ok {
			return nil, fmt.Errorf("malformed cursor %q", filter.Cursor)
		}
		q = q.Where("verification_level < ? OR (verification_level = ? AND id > ?)", level, level, id)
	}

	q = q.Order("verification_level DESC, id ASC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var listings []model.Listing
	if err := q.Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// FindByID finds a listing by ID.
func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// UpdateFields applies a sparse field merge.
func (r *listingRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&model.Listing{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// IncrementVouch bumps the vouch count by one in a single UPDATE so
// concurrent increments never lose updates.
func (r *listingRepository) IncrementVouch(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Listing{}).
		Where("id = ?", id).
		UpdateColumn("vouch_count", gorm.Expr("vouch_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DistinctCategories projects and deduplicates the category of every
// listing. Intentionally a full scan; no category index is maintained.
func (r *listingRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	listings, err := r.Find(ctx, ListingFilter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(listings))
	categories := make([]string, 0, len(listings))
	for _, l := range listings {
		if _, ok := seen[l.Category]; ok {
			continue
		}
		seen[l.Category] = struct{}{}
		categories = append(categories, l.Category)
	}
	return categories, nil
}

// Count returns the total number of listings.
func (r *listingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Listing{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SeedBatch inserts the seed marker and the catalog in one transaction. A
// second caller hits the marker's primary key and the whole batch rolls
// back, so the catalog is persisted exactly once even across concurrent
// cold starts.
func (r *listingRepository) SeedBatch(ctx context.Context, listings []model.Listing) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.SeedMarker{Key: seedMarkerKey}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrAlreadySeeded
			}
			return fmt.Errorf("insert seed marker: %w", err)
		}
		if err := tx.CreateInBatches(listings, 50).Error; err != nil {
			return fmt.Errorf("insert seed catalog: %w", err)
		}
		return nil
	})
}
