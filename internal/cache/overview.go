// Package cache provides a short-lived Redis cache for computed
// overviews. It is strictly an optimization: every operation fails open,
// and a missing Redis address disables caching entirely.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/config"
	"github.com/sightlinehq/sightline/internal/dto"
)

// OverviewCache stores marshaled overview responses keyed by project,
// window size, and the minute bucket the overview was computed in. The
// bucket keeps stale entries from outliving the TTL across window
// boundaries.
type OverviewCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// New connects to Redis and returns an overview cache, or nil when no
// address is configured. A nil *OverviewCache is safe to use; all its
// methods are no-ops.
func New(ctx context.Context, cfg *config.Redis, log *zap.Logger) (*OverviewCache, error) {
	if cfg.Addr == "" {
		log.Info("Overview cache disabled: no Redis address configured")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	log.Info("Overview cache connected", zap.String("addr", cfg.Addr))

	return &OverviewCache{
		client: client,
		ttl:    time.Duration(cfg.TTLSec) * time.Second,
		log:    log,
	}, nil
}

func key(projectID string, days int, now time.Time) string {
	bucket := now.UTC().Truncate(time.Minute).Unix()
	return fmt.Sprintf("overview:%s:%d:%d", projectID, days, bucket)
}

// Get returns the cached overview for the key, or nil on miss or error.
func (c *OverviewCache) Get(ctx context.Context, projectID string, days int, now time.Time) *dto.OverviewResponse {
	if c == nil {
		return nil
	}

	data, err := c.client.Get(ctx, key(projectID, days, now)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("Overview cache read failed", zap.Error(err))
		}
		return nil
	}

	var overview dto.OverviewResponse
	if err := json.Unmarshal(data, &overview); err != nil {
		c.log.Warn("Overview cache entry corrupt", zap.Error(err))
		return nil
	}

	return &overview
}

// Set stores the overview. Failures are logged and swallowed.
func (c *OverviewCache) Set(ctx context.Context, projectID string, days int, now time.Time, overview *dto.OverviewResponse) {
	if c == nil {
		return
	}

	data, err := json.Marshal(overview)
	if err != nil {
		c.log.Warn("Failed to marshal overview for cache", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key(projectID, days, now), data, c.ttl).Err(); err != nil {
		c.log.Warn("Overview cache write failed", zap.Error(err))
	}
}

// Close closes the Redis client.
func (c *OverviewCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
