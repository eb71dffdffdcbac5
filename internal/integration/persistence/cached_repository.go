package persistence

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
)

const categoriesCacheKey = "categories:all"

func spendLimitsCacheKey(userID uuid.UUID) string {
	return "spend_limits:" + userID.String()
}

// cachedCategoryRepository serves FindAll from the cache. Categories only
// change when the store is seeded, so the entry is dropped after a seed.
type cachedCategoryRepository struct {
	adapter.CategoryRepository
	cache adapter.Cache
	ttl   time.Duration
}

// NewCachedCategoryRepository wraps repo with a read-through cache.
func NewCachedCategoryRepository(repo adapter.CategoryRepository, cache adapter.Cache, ttl time.Duration) adapter.CategoryRepository {
	return &cachedCategoryRepository{
		CategoryRepository: repo,
		cache:              cache,
		ttl:                ttl,
	}
}

func (r *cachedCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var cached []*entity.Category
	hit, err := r.cache.Get(ctx, categoriesCacheKey, &cached)
	if err != nil {
		slog.Warn("Category cache read failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	categories, err := r.CategoryRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, categoriesCacheKey, categories, r.ttl); err != nil {
		slog.Warn("Category cache write failed", "error", err)
	}
	return categories, nil
}

func (r *cachedCategoryRepository) SeedIfEmpty(ctx context.Context, categories []*entity.Category) (int, error) {
	inserted, err := r.CategoryRepository.SeedIfEmpty(ctx, categories)
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		if err := r.cache.Delete(ctx, categoriesCacheKey); err != nil {
			slog.Warn("Category cache invalidation failed", "error", err)
		}
	}
	return inserted, nil
}

// cachedSpendLimitRepository caches each user's limit list and answers
// single-category lookups from it.
type cachedSpendLimitRepository struct {
	repo  adapter.SpendLimitRepository
	cache adapter.Cache
	ttl   time.Duration
}

// NewCachedSpendLimitRepository wraps repo with a per-user read-through cache.
func NewCachedSpendLimitRepository(repo adapter.SpendLimitRepository, cache adapter.Cache, ttl time.Duration) adapter.SpendLimitRepository {
	return &cachedSpendLimitRepository{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *cachedSpendLimitRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategorySpendLimit, error) {
	key := spendLimitsCacheKey(userID)

	var cached []*entity.CategorySpendLimit
	hit, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.Warn("Spend limit cache read failed", "user_id", userID, "error", err)
	}
	if hit {
		return cached, nil
	}

	limits, err := r.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, limits, r.ttl); err != nil {
		slog.Warn("Spend limit cache write failed", "user_id", userID, "error", err)
	}
	return limits, nil
}

func (r *cachedSpendLimitRepository) FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.CategorySpendLimit, error) {
	limits, err := r.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, l := range limits {
		if l.Category == category {
			return l, nil
		}
	}
	return nil, nil
}

func (r *cachedSpendLimitRepository) Upsert(ctx context.Context, limit *entity.CategorySpendLimit) error {
	if err := r.repo.Upsert(ctx, limit); err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, spendLimitsCacheKey(limit.UserID)); err != nil {
		slog.Warn("Spend limit cache invalidation failed", "user_id", limit.UserID, "error", err)
	}
	return nil
}
