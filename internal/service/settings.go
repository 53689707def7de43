package service

import (
	"context"
	"time"

	"tpass/internal/domain"
	"tpass/internal/redis"
	"tpass/internal/repository"
)

// SettingsService handles user settings.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	cacheStore   redis.CacheStoreInterface
	fallbackFare int64 // bus fare used before the user saves settings
}

// NewSettingsService creates a new SettingsService. fallbackFare is the
// configured per-segment bus fare applied until the user saves their own;
// 0 means the standard fare.
func NewSettingsService(settingsRepo repository.SettingsRepository, cacheStore redis.CacheStoreInterface, fallbackFare int64) *SettingsService {
	if fallbackFare <= 0 {
		fallbackFare = domain.DefaultBusFare
	}
	return &SettingsService{
		settingsRepo: settingsRepo,
		cacheStore:   cacheStore,
		fallbackFare: fallbackFare,
	}
}

// Get returns the current settings, falling back to defaults when the user
// has never saved any.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetSettings(ctx)
		if err == nil && cached != nil {
			return &domain.Settings{ID: "default", DefaultBusFare: cached.DefaultBusFare}, nil
		}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = domain.DefaultSettings()
		settings.DefaultBusFare = s.fallbackFare
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetSettings(ctx, &redis.CachedSettings{DefaultBusFare: settings.DefaultBusFare})
	}

	return settings, nil
}

// UpdateBusFare sets the default per-segment bus fare.
func (s *SettingsService) UpdateBusFare(ctx context.Context, fare int64) (*domain.Settings, error) {
	if fare <= 0 || fare > 10000 {
		return nil, ErrInvalidBusFare
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if settings == nil {
		settings = domain.DefaultSettings()
		settings.CreatedAt = now
	}
	settings.DefaultBusFare = fare
	settings.UpdatedAt = now

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateSettings(ctx)
	}

	return settings, nil
}

// DefaultBusFare returns the configured per-segment bus fare.
func (s *SettingsService) DefaultBusFare(ctx context.Context) int64 {
	settings, err := s.Get(ctx)
	if err != nil {
		return s.fallbackFare
	}
	return settings.DefaultBusFare
}
