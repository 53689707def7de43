package redis

import (
	"context"
	"time"
)

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquirePeriodLock(ctx context.Context, ttl time.Duration) (bool, error)
	ReleasePeriodLock(ctx context.Context) error
}

// CacheStoreInterface defines the interface for entity caching.
type CacheStoreInterface interface {
	GetActivePeriod(ctx context.Context) (*CachedPeriod, error)
	SetActivePeriod(ctx context.Context, period *CachedPeriod) error
	InvalidateActivePeriod(ctx context.Context) error
	GetSettings(ctx context.Context) (*CachedSettings, error)
	SetSettings(ctx context.Context, settings *CachedSettings) error
	InvalidateSettings(ctx context.Context) error
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface  = (*LockStore)(nil)
	_ CacheStoreInterface = (*CacheStore)(nil)
)
