package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tpass/internal/domain"
	"tpass/internal/repository"
)

// PeriodRepository is a PostgreSQL implementation of repository.PeriodRepository.
type PeriodRepository struct {
	q Querier
}

// NewPeriodRepository creates a new PostgreSQL period repository.
func NewPeriodRepository(db *sql.DB) *PeriodRepository {
	return &PeriodRepository{q: db}
}

// NewPeriodRepositoryWithTx creates a period repository using a transaction.
func NewPeriodRepositoryWithTx(tx *sql.Tx) *PeriodRepository {
	return &PeriodRepository{q: tx}
}

const periodColumns = `id, start_date, end_date, ticket_price, status, created_at, updated_at`

// Create persists a new period.
func (r *PeriodRepository) Create(ctx context.Context, period *domain.Period) error {
	query := `
		INSERT INTO periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		period.ID,
		period.StartDate,
		period.EndDate,
		period.TicketPrice,
		period.Status,
		period.CreatedAt,
		period.UpdatedAt,
	)

	return err
}

func scanPeriod(row interface{ Scan(...any) error }) (*domain.Period, error) {
	var period domain.Period
	err := row.Scan(
		&period.ID,
		&period.StartDate,
		&period.EndDate,
		&period.TicketPrice,
		&period.Status,
		&period.CreatedAt,
		&period.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetByID retrieves a period by ID.
func (r *PeriodRepository) GetByID(ctx context.Context, id string) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE id = $1`

	period, err := scanPeriod(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return period, nil
}

// GetActive retrieves the single active period. Returns nil if none is active.
func (r *PeriodRepository) GetActive(ctx context.Context) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE status = $1 LIMIT 1`

	period, err := scanPeriod(r.q.QueryRowContext(ctx, query, domain.PeriodStatusActive))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return period, nil
}

// GetAll retrieves all periods, newest first.
func (r *PeriodRepository) GetAll(ctx context.Context) ([]*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods ORDER BY start_date DESC`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []*domain.Period
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}

	return periods, rows.Err()
}

// UpdateStatus sets the lifecycle status of a period.
func (r *PeriodRepository) UpdateStatus(ctx context.Context, id string, status domain.PeriodStatus) error {
	query := `UPDATE periods SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.q.ExecContext(ctx, query, status, time.Now(), id)
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

// Ensure PeriodRepository implements repository.PeriodRepository.
var _ repository.PeriodRepository = (*PeriodRepository)(nil)
