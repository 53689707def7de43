package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tpass/internal/domain"
	"tpass/internal/redis"
	"tpass/internal/repository"
	"tpass/internal/stats"
)

const periodLockTTL = 5 * time.Second

// PeriodService manages the TPASS period lifecycle and derived statistics.
type PeriodService struct {
	periodRepo  repository.PeriodRepository
	tripRepo    repository.TripRepository
	lockStore   redis.LockStoreInterface
	cacheStore  redis.CacheStoreInterface
	ticketPrice int64 // applied when a creation request omits the price
}

// NewPeriodService creates a new PeriodService. ticketPrice is the configured
// default TPASS price; 0 means the standard price.
func NewPeriodService(
	periodRepo repository.PeriodRepository,
	tripRepo repository.TripRepository,
	lockStore redis.LockStoreInterface,
	cacheStore redis.CacheStoreInterface,
	ticketPrice int64,
) *PeriodService {
	if ticketPrice <= 0 {
		ticketPrice = domain.DefaultTicketPrice
	}
	return &PeriodService{
		periodRepo:  periodRepo,
		tripRepo:    tripRepo,
		lockStore:   lockStore,
		cacheStore:  cacheStore,
		ticketPrice: ticketPrice,
	}
}

// CreatePeriodRequest carries the parameters for starting a new period.
type CreatePeriodRequest struct {
	StartDate   time.Time
	TicketPrice int64 // 0 means the standard price
}

// CreatePeriod starts a new 30-day period. Only one period may be active at a
// time; concurrent creations are serialized through a short-lived Redis lock.
func (s *PeriodService) CreatePeriod(ctx context.Context, req CreatePeriodRequest) (*domain.Period, error) {
	if req.StartDate.IsZero() {
		return nil, ErrInvalidStartDate
	}

	price := req.TicketPrice
	if price == 0 {
		price = s.ticketPrice
	}
	if price < 0 || price > 10000 {
		return nil, ErrInvalidTicketPrice
	}

	if s.lockStore != nil {
		acquired, err := s.lockStore.AcquirePeriodLock(ctx, periodLockTTL)
		if err != nil {
			return nil, fmt.Errorf("acquire period lock: %w", err)
		}
		if !acquired {
			return nil, ErrPeriodCreationLocked
		}
		defer func() { _ = s.lockStore.ReleasePeriodLock(ctx) }()
	}

	active, err := s.periodRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrActivePeriodExists
	}

	now := time.Now()
	start := domain.DateOnly(req.StartDate)
	period := &domain.Period{
		ID:          uuid.New().String(),
		StartDate:   start,
		EndDate:     domain.PeriodEndDate(start),
		TicketPrice: price,
		Status:      domain.PeriodStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.periodRepo.Create(ctx, period); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetActivePeriod(ctx, cachedPeriod(period))
	}

	return period, nil
}

// GetPeriod retrieves a period by ID.
func (s *PeriodService) GetPeriod(ctx context.Context, id string) (*domain.Period, error) {
	if id == "" {
		return nil, ErrInvalidPeriodID
	}
	return s.periodRepo.GetByID(ctx, id)
}

// ListPeriods retrieves all periods, newest first.
func (s *PeriodService) ListPeriods(ctx context.Context) ([]*domain.Period, error) {
	return s.periodRepo.GetAll(ctx)
}

// GetActivePeriod retrieves the current active period, or ErrNoActivePeriod.
func (s *PeriodService) GetActivePeriod(ctx context.Context) (*domain.Period, error) {
	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetActivePeriod(ctx)
		if err == nil && cached != nil {
			if period, ok := periodFromCache(cached); ok {
				return period, nil
			}
		}
	}

	period, err := s.periodRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, ErrNoActivePeriod
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetActivePeriod(ctx, cachedPeriod(period))
	}

	return period, nil
}

// PeriodStats recomputes the statistics snapshot for one period as of now.
func (s *PeriodService) PeriodStats(ctx context.Context, periodID string, now time.Time) (*domain.PeriodStats, error) {
	period, err := s.GetPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.GetByPeriodID(ctx, periodID)
	if err != nil {
		return nil, err
	}

	return stats.ComputePeriodStats(period, trips, now), nil
}

// GlobalStats aggregates across every period and trip ever recorded.
func (s *PeriodService) GlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	periods, err := s.periodRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return stats.ComputeGlobalStats(periods, trips), nil
}

// CheckAndExpire transitions the active period to completed once its end date
// has passed. Safe to call repeatedly; a no-op when nothing is active or the
// period is still running.
func (s *PeriodService) CheckAndExpire(ctx context.Context, now time.Time) (*domain.Period, error) {
	period, err := s.periodRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if period == nil || !period.Ended(now) {
		return nil, nil
	}

	if err := s.periodRepo.UpdateStatus(ctx, period.ID, domain.PeriodStatusCompleted); err != nil {
		return nil, err
	}
	period.Status = domain.PeriodStatusCompleted
	period.UpdatedAt = time.Now()

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateActivePeriod(ctx)
	}

	return period, nil
}

const cacheDateLayout = "2006-01-02"

func cachedPeriod(p *domain.Period) *redis.CachedPeriod {
	return &redis.CachedPeriod{
		ID:          p.ID,
		StartDate:   p.StartDate.Format(cacheDateLayout),
		EndDate:     p.EndDate.Format(cacheDateLayout),
		TicketPrice: p.TicketPrice,
		Status:      string(p.Status),
	}
}

func periodFromCache(c *redis.CachedPeriod) (*domain.Period, bool) {
	start, err := time.ParseInLocation(cacheDateLayout, c.StartDate, time.Local)
	if err != nil {
		return nil, false
	}
	end, err := time.ParseInLocation(cacheDateLayout, c.EndDate, time.Local)
	if err != nil {
		return nil, false
	}
	return &domain.Period{
		ID:          c.ID,
		StartDate:   start,
		EndDate:     end,
		TicketPrice: c.TicketPrice,
		Status:      domain.PeriodStatus(c.Status),
	}, true
}
