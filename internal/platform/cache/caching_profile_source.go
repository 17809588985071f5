// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"social_backend/internal/feature/profile/domain/entity"
)

// ProfileSource is the aggregation layer this decorator wraps.
type ProfileSource interface {
	// FetchProfile returns the aggregated profile for a user id.
	FetchProfile(ctx context.Context, userID uint) (*entity.AggregatedUser, error)

	// ResolveUsername maps a username to its user id.
	ResolveUsername(ctx context.Context, username string) (uint, error)
}

// CachingProfileSource decorates a ProfileSource with Redis caching.
// It implements the decorator pattern, transparently adding caching
// without modifying the underlying aggregator. Aggregated profiles are a
// read-heavy join, so they are cached whole per user id; mutating flows
// call Invalidate after saving.
type CachingProfileSource struct {
	inner     ProfileSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingProfileSource decorates a ProfileSource with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "profiles".
func NewCachingProfileSource(rdb *redis.Client, ttl time.Duration, inner ProfileSource, namespace string) *CachingProfileSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "profiles"
	}
	return &CachingProfileSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FetchProfile retrieves a profile, checking cache first then falling
// back to the aggregator.
func (c *CachingProfileSource) FetchProfile(ctx context.Context, userID uint) (*entity.AggregatedUser, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FetchProfile(ctx, userID)
	}

	key := c.cacheKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.AggregatedUser
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the aggregator
	out, err := c.inner.FetchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FetchProfileByUsername resolves the username through the aggregator and
// serves the profile through the id-keyed cache.
func (c *CachingProfileSource) FetchProfileByUsername(ctx context.Context, username string) (*entity.AggregatedUser, error) {
	id, err := c.inner.ResolveUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return c.FetchProfile(ctx, id)
}

// Invalidate removes the cached profile for a user. Mutating usecases
// call this after saving so the next read re-joins. Failures are
// reported but callers treat invalidation as best effort.
func (c *CachingProfileSource) Invalidate(ctx context.Context, userID uint) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.cacheKey(userID)).Err()
}

// cacheKey generates the cache key for a user's aggregated profile.
func (c *CachingProfileSource) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, userID)
}
