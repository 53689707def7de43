package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tpass/internal/domain"
	"tpass/internal/repository"
)

// SettingsRepository is a PostgreSQL implementation of repository.SettingsRepository.
type SettingsRepository struct {
	q Querier
}

// NewSettingsRepository creates a new PostgreSQL settings repository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{q: db}
}

// Get retrieves the settings row. Returns nil if settings were never saved.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT id, default_bus_fare, created_at, updated_at
		FROM settings WHERE id = 'default'
	`

	var settings domain.Settings
	err := r.q.QueryRowContext(ctx, query).Scan(
		&settings.ID,
		&settings.DefaultBusFare,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &settings, nil
}

// Save inserts or replaces the settings row.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	query := `
		INSERT INTO settings (id, default_bus_fare, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET default_bus_fare = EXCLUDED.default_bus_fare, updated_at = EXCLUDED.updated_at
	`

	_, err := r.q.ExecContext(ctx, query,
		settings.ID,
		settings.DefaultBusFare,
		settings.CreatedAt,
		settings.UpdatedAt,
	)

	return err
}

// Ensure SettingsRepository implements repository.SettingsRepository.
var _ repository.SettingsRepository = (*SettingsRepository)(nil)
