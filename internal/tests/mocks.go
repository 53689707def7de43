package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"tpass/internal/domain"
	"tpass/internal/redis"
	"tpass/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK PERIOD REPOSITORY
// ──────────────────────────────────────────────

// MockPeriodRepository is a mock implementation of PeriodRepository.
type MockPeriodRepository struct {
	mu      sync.RWMutex
	periods map[string]*domain.Period

	// Counters for verification
	CreateCallCount       int32
	UpdateStatusCallCount int32

	// Error injection
	CreateError       error
	GetActiveError    error
	UpdateStatusError error
}

// NewMockPeriodRepository creates a new mock period repository.
func NewMockPeriodRepository() *MockPeriodRepository {
	return &MockPeriodRepository{
		periods: make(map[string]*domain.Period),
	}
}

// AddPeriod adds a period to the mock repository.
func (m *MockPeriodRepository) AddPeriod(period *domain.Period) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.periods[period.ID] = period
}

func (m *MockPeriodRepository) Create(ctx context.Context, period *domain.Period) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.periods[period.ID] = period
	return nil
}

func (m *MockPeriodRepository) GetByID(ctx context.Context, id string) (*domain.Period, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	period, ok := m.periods[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *period
	return &copy, nil
}

func (m *MockPeriodRepository) GetActive(ctx context.Context) (*domain.Period, error) {
	if m.GetActiveError != nil {
		return nil, m.GetActiveError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.periods {
		if p.Status == domain.PeriodStatusActive {
			copy := *p
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockPeriodRepository) GetAll(ctx context.Context) ([]*domain.Period, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Period, 0, len(m.periods))
	for _, p := range m.periods {
		copy := *p
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockPeriodRepository) UpdateStatus(ctx context.Context, id string, status domain.PeriodStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	period, ok := m.periods[id]
	if !ok {
		return repository.ErrNotFound
	}
	period.Status = status
	return nil
}

// GetPeriod returns a period for test assertions.
func (m *MockPeriodRepository) GetPeriod(id string) *domain.Period {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.periods[id]
}

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of TripRepository.
type MockTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.Trip

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	UpdateError error
	DeleteError error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{
		trips: make(map[string]*domain.Trip),
	}
}

// AddTrip adds a trip to the mock repository.
func (m *MockTripRepository) AddTrip(trip *domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *trip
	return &copy, nil
}

func (m *MockTripRepository) GetByPeriodID(ctx context.Context, periodID string) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Trip
	for _, t := range m.trips {
		if t.PeriodID == periodID {
			copy := *t
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockTripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Trip, 0, len(m.trips))
	for _, t := range m.trips {
		copy := *t
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockTripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[trip.ID]; !ok {
		return repository.ErrNotFound
	}
	m.trips[trip.ID] = trip
	return nil
}

func (m *MockTripRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.trips, id)
	return nil
}

// CountTrips returns the number of stored trips.
func (m *MockTripRepository) CountTrips() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.trips)
}

// GetTrip returns a trip for test assertions.
func (m *MockTripRepository) GetTrip(id string) *domain.Trip {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.trips[id]
}

// ──────────────────────────────────────────────
// MOCK SETTINGS REPOSITORY
// ──────────────────────────────────────────────

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	mu       sync.RWMutex
	settings *domain.Settings

	SaveCallCount int32

	GetError  error
	SaveError error
}

// NewMockSettingsRepository creates a new mock settings repository.
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return nil, nil
	}
	copy := *m.settings
	return &copy, nil
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *settings
	m.settings = &copy
	return nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStoreInterface.
type MockLockStore struct {
	mu     sync.Mutex
	locked bool

	// AcquireResult forces the result of AcquirePeriodLock when set.
	AcquireResult *bool
	AcquireError  error

	AcquireCallCount int32
	ReleaseCallCount int32
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{}
}

func (m *MockLockStore) AcquirePeriodLock(ctx context.Context, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	if m.AcquireResult != nil {
		return *m.AcquireResult, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locked {
		return false, nil
	}
	m.locked = true
	return true, nil
}

func (m *MockLockStore) ReleasePeriodLock(ctx context.Context) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locked = false
	return nil
}

// ──────────────────────────────────────────────
// MOCK CACHE STORE
// ──────────────────────────────────────────────

// MockCacheStore is a mock implementation of CacheStoreInterface.
type MockCacheStore struct {
	mu       sync.RWMutex
	period   *redis.CachedPeriod
	settings *redis.CachedSettings

	SetActivePeriodCallCount        int32
	InvalidateActivePeriodCallCount int32
	SetSettingsCallCount            int32
	InvalidateSettingsCallCount     int32
}

// NewMockCacheStore creates a new mock cache store.
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{}
}

func (m *MockCacheStore) GetActivePeriod(ctx context.Context) (*redis.CachedPeriod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.period, nil
}

func (m *MockCacheStore) SetActivePeriod(ctx context.Context, period *redis.CachedPeriod) error {
	atomic.AddInt32(&m.SetActivePeriodCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.period = period
	return nil
}

func (m *MockCacheStore) InvalidateActivePeriod(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateActivePeriodCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.period = nil
	return nil
}

func (m *MockCacheStore) GetSettings(ctx context.Context) (*redis.CachedSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}

func (m *MockCacheStore) SetSettings(ctx context.Context, settings *redis.CachedSettings) error {
	atomic.AddInt32(&m.SetSettingsCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = settings
	return nil
}

func (m *MockCacheStore) InvalidateSettings(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateSettingsCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = nil
	return nil
}

// CachedPeriod returns the cached period for test assertions.
func (m *MockCacheStore) CachedPeriod() *redis.CachedPeriod {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.period
}
