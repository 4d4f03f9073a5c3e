package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"webinar-server/internal/cache"
)

var (
	// Cache backend (memory or redis) for rendered pages and QR codes
	cacheBackend cache.Backend

	cacheConfig cache.Config

	// Cache backend type for health reporting
	cacheBackendType string // "redis" or "memory"
)

// InitCaches initializes the cache with Redis if REDIS_URL is set, otherwise memory
func InitCaches() {
	cacheConfig = cache.DefaultConfig()
	redisURL := os.Getenv("REDIS_URL")

	if redisURL != "" {
		slog.Info("initializing Redis cache")
		redisCache, err := cache.NewRedisCache(redisURL, cacheConfig.Prefix)
		if err != nil {
			slog.Warn("Redis connection failed, using memory cache", "error", err)
			initMemoryCache()
			return
		}
		cacheBackend = redisCache
		cacheBackendType = "redis"
		slog.Info("Redis cache initialized")
		return
	}

	initMemoryCache()
}

func initMemoryCache() {
	slog.Info("initializing in-memory cache")
	cacheBackend = cache.NewMemoryCache(1000, 2*time.Minute)
	cacheBackendType = "memory"
}

// cacheGet reads through the backend and counts hits and misses. Backend
// errors are logged and treated as misses.
func cacheGet(ctx context.Context, key string) ([]byte, bool) {
	data, found, err := cacheBackend.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		found = false
	}
	if found {
		IncrementCacheHit()
		return data, true
	}
	IncrementCacheMiss()
	return nil, false
}

func cacheSet(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := cacheBackend.Set(ctx, key, value, ttl); err != nil {
		slog.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}
