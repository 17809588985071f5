package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"social_backend/internal/platform/cache"
)

// NewProfileSource wraps the profile aggregator with the Redis cache
// decorator. With a nil Redis client the decorator passes every read
// through to the aggregator, so callers never need to branch on cache
// availability.
func NewProfileSource(rdb *redis.Client, ttl time.Duration, inner cache.ProfileSource) *cache.CachingProfileSource {
	return cache.NewCachingProfileSource(rdb, ttl, inner, "profiles")
}
