package repository

import (
	"context"

	"tpass/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetByPeriodID retrieves all trips belonging to a period, unordered
	// beyond recency.
	GetByPeriodID(ctx context.Context, periodID string) ([]*domain.Trip, error)

	// GetAll retrieves every recorded trip.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// Update updates an existing trip.
	Update(ctx context.Context, trip *domain.Trip) error

	// Delete removes a trip.
	Delete(ctx context.Context, id string) error
}
