package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

const periodLockKey = "lock:period:create"

// AcquirePeriodLock attempts to acquire the period-creation lock, which
// serializes creation so the single-active-period invariant holds even under
// concurrent requests. Returns true if the lock was acquired.
func (s *LockStore) AcquirePeriodLock(ctx context.Context, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, periodLockKey, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleasePeriodLock releases the period-creation lock.
func (s *LockStore) ReleasePeriodLock(ctx context.Context) error {
	return s.client.Del(ctx, periodLockKey).Err()
}
