// internal/services/analytics_cache.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/freshcart/grocery-backend/internal/analytics"
)

// AnalyticsCacheService caches demand aggregation results so that every
// dashboard refresh does not rescan the full order history.
type AnalyticsCacheService struct {
	redis *redis.Client
	ttl   time.Duration
}

// CachedAnalytics is the demand snapshot stored in redis.
type CachedAnalytics struct {
	Result   *analytics.Result `json:"result,omitempty"`
	CachedAt time.Time         `json:"cached_at"`
}

func NewAnalyticsCacheService(redisClient *redis.Client, ttl time.Duration) *AnalyticsCacheService {
	if ttl == 0 {
		ttl = 10 * time.Minute // Default TTL
	}
	return &AnalyticsCacheService{
		redis: redisClient,
		ttl:   ttl,
	}
}

// cacheKey buckets entries by aggregation config and by day, so yesterday's
// windows never leak into today's dashboard.
func (s *AnalyticsCacheService) cacheKey(day string, cfg analytics.Config) string {
	return fmt.Sprintf("grocery:analytics:demand:%s:%d:%d:%g", day, cfg.TopN, cfg.LowStockThreshold, cfg.AddToCartMultiplier)
}

// Get retrieves a cached demand snapshot. A nil result with nil error is a
// cache miss; redis being down degrades to a miss as well.
func (s *AnalyticsCacheService) Get(ctx context.Context, day string, cfg analytics.Config) (*CachedAnalytics, error) {
	if s.redis == nil {
		return nil, nil // No cache available
	}

	key := s.cacheKey(day, cfg)
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		logrus.WithError(err).WithField("key", key).Warn("failed to get analytics from cache")
		return nil, nil
	}

	var cached CachedAnalytics
	if err := json.Unmarshal(data, &cached); err != nil {
		logrus.WithError(err).Warn("failed to unmarshal cached analytics")
		return nil, nil
	}

	logrus.WithField("key", key).Debug("cache hit for analytics")
	return &cached, nil
}

// Set stores a demand snapshot in cache.
func (s *AnalyticsCacheService) Set(ctx context.Context, day string, cfg analytics.Config, result *analytics.Result) error {
	if s.redis == nil {
		return nil // No cache available
	}

	cached := CachedAnalytics{Result: result, CachedAt: time.Now()}
	key := s.cacheKey(day, cfg)

	data, err := json.Marshal(cached)
	if err != nil {
		logrus.WithError(err).Warn("failed to marshal analytics for cache")
		return err
	}

	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("failed to set analytics in cache")
		return err
	}

	logrus.WithFields(logrus.Fields{"key": key, "ttl": s.ttl}).Debug("cached analytics")
	return nil
}

// Invalidate removes every cached demand snapshot. Called after writes that
// change the underlying orders or catalog.
func (s *AnalyticsCacheService) Invalidate(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}

	keys, err := s.redis.Keys(ctx, "grocery:analytics:demand:*").Result()
	if err != nil {
		logrus.WithError(err).Warn("failed to find cache keys to invalidate")
		return err
	}

	if len(keys) > 0 {
		if err := s.redis.Del(ctx, keys...).Err(); err != nil {
			logrus.WithError(err).Warn("failed to invalidate analytics cache")
			return err
		}
		logrus.WithField("keys_removed", len(keys)).Debug("invalidated analytics cache")
	}

	return nil
}
