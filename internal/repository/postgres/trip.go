package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tpass/internal/domain"
	"tpass/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

const tripColumns = `id, period_id, transport_type, departure_station, arrival_station,
	route_number, segments, duration_minutes, city, ferry_route, amount, recorded_at, note,
	created_at, updated_at`

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.PeriodID,
		trip.TransportType,
		trip.DepartureStation,
		trip.ArrivalStation,
		trip.RouteNumber,
		trip.Segments,
		trip.Duration,
		trip.City,
		trip.FerryRoute,
		trip.Amount,
		trip.Timestamp,
		trip.Note,
		trip.CreatedAt,
		trip.UpdatedAt,
	)

	return err
}

// scanTrip scans one trips row into a domain.Trip.
func scanTrip(row interface{ Scan(...any) error }) (*domain.Trip, error) {
	var trip domain.Trip
	err := row.Scan(
		&trip.ID,
		&trip.PeriodID,
		&trip.TransportType,
		&trip.DepartureStation,
		&trip.ArrivalStation,
		&trip.RouteNumber,
		&trip.Segments,
		&trip.Duration,
		&trip.City,
		&trip.FerryRoute,
		&trip.Amount,
		&trip.Timestamp,
		&trip.Note,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return trip, nil
}

// GetByPeriodID retrieves all trips belonging to a period, newest first.
func (r *TripRepository) GetByPeriodID(ctx context.Context, periodID string) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE period_id = $1 ORDER BY recorded_at DESC`

	return r.queryTrips(ctx, query, periodID)
}

// GetAll retrieves every recorded trip, newest first.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY recorded_at DESC`

	return r.queryTrips(ctx, query)
}

func (r *TripRepository) queryTrips(ctx context.Context, query string, args ...any) ([]*domain.Trip, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

// Update updates an existing trip.
func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	query := `
		UPDATE trips
		SET transport_type = $1, departure_station = $2, arrival_station = $3,
			route_number = $4, segments = $5, duration_minutes = $6, city = $7,
			ferry_route = $8, amount = $9, recorded_at = $10, note = $11, updated_at = $12
		WHERE id = $13
	`

	result, err := r.q.ExecContext(ctx, query,
		trip.TransportType,
		trip.DepartureStation,
		trip.ArrivalStation,
		trip.RouteNumber,
		trip.Segments,
		trip.Duration,
		trip.City,
		trip.FerryRoute,
		trip.Amount,
		trip.Timestamp,
		trip.Note,
		trip.UpdatedAt,
		trip.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a trip.
func (r *TripRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
