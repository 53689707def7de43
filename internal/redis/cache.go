package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore caches small, frequently read entities in Redis. Period
// statistics are deliberately not cached: they are recomputed from the trip
// set on every query.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	ActivePeriodCacheTTL = 60 * time.Second // invalidated on every status change
	SettingsCacheTTL     = 5 * time.Minute  // settings change rarely
)

// Key names
const (
	activePeriodCacheKey = "cache:period:active"
	settingsCacheKey     = "cache:settings:default"
)

// CachedPeriod represents a cached period entity.
type CachedPeriod struct {
	ID          string `json:"id"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD
	TicketPrice int64  `json:"ticket_price"`
	Status      string `json:"status"`
}

// CachedSettings represents cached user settings.
type CachedSettings struct {
	DefaultBusFare int64 `json:"default_bus_fare"`
}

// GetActivePeriod retrieves the cached active period. Returns nil on a miss.
func (s *CacheStore) GetActivePeriod(ctx context.Context) (*CachedPeriod, error) {
	data, err := s.client.Get(ctx, activePeriodCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var period CachedPeriod
	if err := json.Unmarshal(data, &period); err != nil {
		return nil, err
	}
	return &period, nil
}

// SetActivePeriod stores the active period in cache.
func (s *CacheStore) SetActivePeriod(ctx context.Context, period *CachedPeriod) error {
	data, err := json.Marshal(period)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, activePeriodCacheKey, data, ActivePeriodCacheTTL).Err()
}

// InvalidateActivePeriod removes the active period from cache.
func (s *CacheStore) InvalidateActivePeriod(ctx context.Context) error {
	return s.client.Del(ctx, activePeriodCacheKey).Err()
}

// GetSettings retrieves cached settings. Returns nil on a miss.
func (s *CacheStore) GetSettings(ctx context.Context) (*CachedSettings, error) {
	data, err := s.client.Get(ctx, settingsCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var settings CachedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetSettings stores settings in cache.
func (s *CacheStore) SetSettings(ctx context.Context, settings *CachedSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, settingsCacheKey, data, SettingsCacheTTL).Err()
}

// InvalidateSettings removes settings from cache.
func (s *CacheStore) InvalidateSettings(ctx context.Context) error {
	return s.client.Del(ctx, settingsCacheKey).Err()
}
