// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package category

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ricardo-cavalheiro/web-api/internal/platform/constants"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/ctxutil"
)

// RedisListCache implements ListCache on Redis with a bounded TTL.
//
// The original list endpoint is by far the hottest read in the API, so its
// result is cached whole under a single key for up to
// [constants.CategoryCacheTTL], and dropped eagerly on any mutation.
type RedisListCache struct {
	client *redis.Client
}

// NewRedisListCache wraps an established Redis client.
func NewRedisListCache(client *redis.Client) *RedisListCache {
	return &RedisListCache{client: client}
}

// Get returns the cached category list, or (nil, false) on a miss.
//
// Any Redis or decode failure is treated as a miss: the cache must never
// take the read path down with it.
func (cache *RedisListCache) Get(ctx context.Context) ([]Category, bool) {
	payload, err := cache.client.Get(ctx, constants.CategoryCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var categories []Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		ctxutil.GetLogger(ctx).Warn("category_cache_decode_failed", slog.Any("error", err))
		return nil, false
	}

	return categories, true
}

// Set stores the list with the configured TTL. Failures are logged, not returned.
func (cache *RedisListCache) Set(ctx context.Context, categories []Category) {
	payload, err := json.Marshal(categories)
	if err != nil {
		ctxutil.GetLogger(ctx).Warn("category_cache_encode_failed", slog.Any("error", err))
		return
	}

	if err := cache.client.Set(ctx, constants.CategoryCacheKey, payload, constants.CategoryCacheTTL).Err(); err != nil {
		ctxutil.GetLogger(ctx).Warn("category_cache_set_failed", slog.Any("error", err))
	}
}

// Invalidate drops the cached list so the next read repopulates it.
func (cache *RedisListCache) Invalidate(ctx context.Context) {
	if err := cache.client.Del(ctx, constants.CategoryCacheKey).Err(); err != nil {
		ctxutil.GetLogger(ctx).Warn("category_cache_invalidate_failed", slog.Any("error", err))
	}
}
