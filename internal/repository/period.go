package repository

import (
	"context"

	"tpass/internal/domain"
)

// PeriodRepository defines the persistence operations for TPASS periods.
type PeriodRepository interface {
	// Create persists a new period.
	Create(ctx context.Context, period *domain.Period) error

	// GetByID retrieves a period by ID.
	GetByID(ctx context.Context, id string) (*domain.Period, error)

	// GetActive retrieves the single active period.
	// Returns nil if no period is active.
	GetActive(ctx context.Context) (*domain.Period, error)

	// GetAll retrieves all periods, newest first.
	GetAll(ctx context.Context) ([]*domain.Period, error)

	// UpdateStatus sets the lifecycle status of a period.
	UpdateStatus(ctx context.Context, id string, status domain.PeriodStatus) error
}
