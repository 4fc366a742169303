// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tradefolio_backend/internal/feature/demo/domain/entity"
	"tradefolio_backend/internal/feature/demo/usecase"
)

// CachingDemoRepository decorates a DemoRepository with Redis caching.
// The demo rows are static seeded data, so they cache safely; live quote
// data never passes through here.
type CachingDemoRepository struct {
	inner     usecase.DemoRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still implements DemoRepository.
var _ usecase.DemoRepository = (*CachingDemoRepository)(nil)

// NewCachingDemoRepository decorates a DemoRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "demo".
func NewCachingDemoRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DemoRepository, namespace string) *CachingDemoRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "demo"
	}
	return &CachingDemoRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListHoldings retrieves demo holdings, checking the cache first.
func (c *CachingDemoRepository) ListHoldings(ctx context.Context) ([]entity.DemoHolding, error) {
	key := c.namespace + ":holdings"

	if c.rdb != nil {
		if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
			var out []entity.DemoHolding
			if err := json.Unmarshal(b, &out); err == nil {
				return out, nil
			}
			// Delete corrupted cache entry
			_ = c.rdb.Del(ctx, key).Err()
		}
	}

	out, err := c.inner.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, out)
	return out, nil
}

// ListPositions retrieves demo positions, checking the cache first.
func (c *CachingDemoRepository) ListPositions(ctx context.Context) ([]entity.DemoPosition, error) {
	key := c.namespace + ":positions"

	if c.rdb != nil {
		if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
			var out []entity.DemoPosition
			if err := json.Unmarshal(b, &out); err == nil {
				return out, nil
			}
			_ = c.rdb.Del(ctx, key).Err()
		}
	}

	out, err := c.inner.ListPositions(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, out)
	return out, nil
}

// Seed seeds the underlying repository and invalidates both cache entries.
func (c *CachingDemoRepository) Seed(ctx context.Context) error {
	if err := c.inner.Seed(ctx); err != nil {
		return err
	}
	if c.rdb != nil {
		// Best effort: don't fail seeding if cache invalidation fails
		_ = c.rdb.Del(ctx, c.namespace+":holdings", c.namespace+":positions").Err()
	}
	return nil
}

// store writes a cache entry, best effort.
func (c *CachingDemoRepository) store(ctx context.Context, key string, v interface{}) {
	if c.rdb == nil {
		return
	}
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
}
