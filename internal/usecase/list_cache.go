package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"go-payment-admin/internal/params"
)

const listCacheTTL = 5 * time.Minute

// listCacheKey derives a stable cache key from the full page request.
// encoding/json writes map keys in sorted order, so equal filter sets hash
// equally.
func listCacheKey(entity string, page *params.PageRequest) string {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Sprintf("list:%s:%d:%d", entity, page.Current, page.PageSize)
	}
	sum := sha1.Sum(data)
	return fmt.Sprintf("list:%s:%x", entity, sum[:8])
}

func cachedPage(ctx context.Context, cache *redis.Client, logger *logrus.Logger, key string) *params.PageResponse {
	if cache == nil {
		return nil
	}
	val, err := cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var page params.PageResponse
	if err := json.Unmarshal([]byte(val), &page); err != nil {
		return nil
	}
	logger.WithField("cache_key", key).Debug("List cache hit")
	return &page
}

func storePage(ctx context.Context, cache *redis.Client, logger *logrus.Logger, key string, page *params.PageResponse) {
	if cache == nil {
		return
	}
	data, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, data, listCacheTTL).Err(); err != nil {
		logger.WithError(err).Warn("Failed to cache list page")
	}
}

// invalidateListCache drops every cached page of one entity. Called after
// each mutation so the reload the console issues observes the new state.
func invalidateListCache(ctx context.Context, cache *redis.Client, logger *logrus.Logger, entity string) {
	if cache == nil {
		return
	}
	pattern := fmt.Sprintf("list:%s:*", entity)
	keys, err := cache.Keys(ctx, pattern).Result()
	if err != nil {
		logger.WithError(err).Warn("Failed to fetch list cache keys for invalidation")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := cache.Del(ctx, keys...).Err(); err != nil {
		logger.WithError(err).Warn("Failed to invalidate list cache")
	}
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		pages++
	}
	return int(pages)
}
