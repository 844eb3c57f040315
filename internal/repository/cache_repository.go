package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bgogeta007/health-hustler/internal/models"
)

const settingsCacheKey = "platform:settings"

// CacheRepository fronts the platform settings row with a Redis cache.
// Settings are read on every page load, so misses go back to MySQL and
// writes invalidate.
type CacheRepository interface {
	GetSettings(ctx context.Context) (*models.PlatformSettings, error)
	SetSettings(ctx context.Context, settings *models.PlatformSettings, ttl time.Duration) error
	InvalidateSettings(ctx context.Context) error
}

type cacheRepository struct {
	client *redis.Client
}

func NewCacheRepository(client *redis.Client) CacheRepository {
	return &cacheRepository{client: client}
}

// GetSettings returns nil on a cache miss
func (r *cacheRepository) GetSettings(ctx context.Context) (*models.PlatformSettings, error) {
	val, err := r.client.Get(ctx, settingsCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached settings: %w", err)
	}

	settings := &models.PlatformSettings{}
	if err := json.Unmarshal(val, settings); err != nil {
		return nil, fmt.Errorf("failed to decode cached settings: %w", err)
	}
	return settings, nil
}

func (r *cacheRepository) SetSettings(ctx context.Context, settings *models.PlatformSettings, ttl time.Duration) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := r.client.Set(ctx, settingsCacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache settings: %w", err)
	}
	return nil
}

func (r *cacheRepository) InvalidateSettings(ctx context.Context) error {
	if err := r.client.Del(ctx, settingsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate settings cache: %w", err)
	}
	return nil
}
