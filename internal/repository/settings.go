package repository

import (
	"context"

	"tpass/internal/domain"
)

// SettingsRepository defines the persistence operations for user settings.
type SettingsRepository interface {
	// Get retrieves the settings row.
	// Returns nil if settings have never been saved.
	Get(ctx context.Context) (*domain.Settings, error)

	// Save inserts or replaces the settings row.
	Save(ctx context.Context, settings *domain.Settings) error
}
