package tests

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"tpass/internal/domain"
	"tpass/internal/service"
)

// ──────────────────────────────────────────────
// 1. PERIOD LIFECYCLE
// ──────────────────────────────────────────────

func newPeriodService(periodRepo *MockPeriodRepository, tripRepo *MockTripRepository) (*service.PeriodService, *MockLockStore, *MockCacheStore) {
	lockStore := NewMockLockStore()
	cacheStore := NewMockCacheStore()
	svc := service.NewPeriodService(periodRepo, tripRepo, lockStore, cacheStore, 0)
	return svc, lockStore, cacheStore
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestCreatePeriod_DefaultsAndEndDate(t *testing.T) {
	t.Parallel()

	periodRepo := NewMockPeriodRepository()
	svc, _, cacheStore := newPeriodService(periodRepo, NewMockTripRepository())

	period, err := svc.CreatePeriod(context.Background(), service.CreatePeriodRequest{
		StartDate: date(2025, time.March, 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if period.TicketPrice != domain.DefaultTicketPrice {
		t.Errorf("expected default ticket price %d, got %d", domain.DefaultTicketPrice, period.TicketPrice)
	}
	if want := date(2025, time.March, 30); !period.EndDate.Equal(want) {
		t.Errorf("expected end date %v, got %v", want, period.EndDate)
	}
	if period.Status != domain.PeriodStatusActive {
		t.Errorf("expected status active, got %s", period.Status)
	}
	if cacheStore.CachedPeriod() == nil {
		t.Error("expected active period to be cached after creation")
	}
}

func TestCreatePeriod_RejectsSecondActive(t *testing.T) {
	t.Parallel()

	periodRepo := NewMockPeriodRepository()
	svc, _, _ := newPeriodService(periodRepo, NewMockTripRepository())

	if _, err := svc.CreatePeriod(context.Background(), service.CreatePeriodRequest{
		StartDate: date(2025, time.March, 1),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.CreatePeriod(context.Background(), service.CreatePeriodRequest{
		StartDate: date(2025, time.March, 2),
	})
	if !errors.Is(err, service.ErrActivePeriodExists) {
		t.Errorf("expected ErrActivePeriodExists, got %v", err)
	}
	if periodRepo.CreateCallCount != 1 {
		t.Errorf("expected 1 create call, got %d", periodRepo.CreateCallCount)
	}
}

func TestCreatePeriod_LockedCreationRejected(t *testing.T) {
	t.Parallel()

	svc, lockStore, _ := newPeriodService(NewMockPeriodRepository(), NewMockTripRepository())

	held := false
	lockStore.AcquireResult = &held

	_, err := svc.CreatePeriod(context.Background(), service.CreatePeriodRequest{
		StartDate: date(2025, time.March, 1),
	})
	if !errors.Is(err, service.ErrPeriodCreationLocked) {
		t.Errorf("expected ErrPeriodCreationLocked, got %v", err)
	}
}

func TestCreatePeriod_ReleasesLockOnSuccess(t *testing.T) {
	t.Parallel()

	svc, lockStore, _ := newPeriodService(NewMockPeriodRepository(), NewMockTripRepository())

	if _, err := svc.CreatePeriod(context.Background(), service.CreatePeriodRequest{
		StartDate: date(2025, time.March, 1),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lockStore.ReleaseCallCount != 1 {
		t.Errorf("expected lock to be released once, got %d", lockStore.ReleaseCallCount)
	}
}

func TestCreatePeriod_InvalidInputs(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPeriodService(NewMockPeriodRepository(), NewMockTripRepository())

	if _, err := svc.CreatePeriod(context.Background(), service.CreatePeriodRequest{}); !errors.Is(err, service.ErrInvalidStartDate) {
		t.Errorf("expected ErrInvalidStartDate, got %v", err)
	}

	_, err := svc.CreatePeriod(context.Background(), service.CreatePeriodRequest{
		StartDate:   date(2025, time.March, 1),
		TicketPrice: 20000,
	})
	if !errors.Is(err, service.ErrInvalidTicketPrice) {
		t.Errorf("expected ErrInvalidTicketPrice, got %v", err)
	}
}

func TestGetActivePeriod_NoneActive(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPeriodService(NewMockPeriodRepository(), NewMockTripRepository())

	_, err := svc.GetActivePeriod(context.Background())
	if !errors.Is(err, service.ErrNoActivePeriod) {
		t.Errorf("expected ErrNoActivePeriod, got %v", err)
	}
}

// ──────────────────────────────────────────────
// 2. PERIOD EXPIRY
// ──────────────────────────────────────────────

func TestCheckAndExpire_PeriodStillRunning(t *testing.T) {
	t.Parallel()

	periodRepo := NewMockPeriodRepository()
	periodRepo.AddPeriod(&domain.Period{
		ID:        "period-1",
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 30),
		Status:    domain.PeriodStatusActive,
	})
	svc, _, _ := newPeriodService(periodRepo, NewMockTripRepository())

	// The last day of the window is still inside the period.
	expired, err := svc.CheckAndExpire(context.Background(), date(2025, time.March, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expired != nil {
		t.Errorf("expected no expiry on the end date, got period %s", expired.ID)
	}
	if periodRepo.UpdateStatusCallCount != 0 {
		t.Error("expected no status update while the period is running")
	}
}

func TestCheckAndExpire_DayAfterEndDate(t *testing.T) {
	t.Parallel()

	periodRepo := NewMockPeriodRepository()
	periodRepo.AddPeriod(&domain.Period{
		ID:        "period-1",
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 30),
		Status:    domain.PeriodStatusActive,
	})
	svc, _, cacheStore := newPeriodService(periodRepo, NewMockTripRepository())

	expired, err := svc.CheckAndExpire(context.Background(), date(2025, time.March, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expired == nil {
		t.Fatal("expected the period to expire the day after its end date")
	}
	if expired.Status != domain.PeriodStatusCompleted {
		t.Errorf("expected status completed, got %s", expired.Status)
	}
	if periodRepo.GetPeriod("period-1").Status != domain.PeriodStatusCompleted {
		t.Error("expected stored period to be completed")
	}
	if cacheStore.InvalidateActivePeriodCallCount != 1 {
		t.Errorf("expected 1 cache invalidation, got %d", cacheStore.InvalidateActivePeriodCallCount)
	}
}

func TestCheckAndExpire_Idempotent(t *testing.T) {
	t.Parallel()

	periodRepo := NewMockPeriodRepository()
	periodRepo.AddPeriod(&domain.Period{
		ID:        "period-1",
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 30),
		Status:    domain.PeriodStatusActive,
	})
	svc, _, _ := newPeriodService(periodRepo, NewMockTripRepository())

	now := date(2025, time.April, 10)
	if _, err := svc.CheckAndExpire(context.Background(), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second run finds nothing active and does nothing.
	expired, err := svc.CheckAndExpire(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expired != nil {
		t.Error("expected second expiry run to be a no-op")
	}
	if periodRepo.UpdateStatusCallCount != 1 {
		t.Errorf("expected 1 status update, got %d", periodRepo.UpdateStatusCallCount)
	}
}

func TestCheckAndExpire_NoActivePeriod(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPeriodService(NewMockPeriodRepository(), NewMockTripRepository())

	expired, err := svc.CheckAndExpire(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expired != nil {
		t.Error("expected no-op when nothing is active")
	}
}

// ──────────────────────────────────────────────
// 3. PERIOD STATS VIA SERVICE
// ──────────────────────────────────────────────

func TestPeriodStats_RecomputedFromTrips(t *testing.T) {
	t.Parallel()

	periodRepo := NewMockPeriodRepository()
	tripRepo := NewMockTripRepository()
	periodRepo.AddPeriod(&domain.Period{
		ID:          "period-1",
		StartDate:   date(2025, time.March, 1),
		EndDate:     date(2025, time.March, 30),
		TicketPrice: 1200,
		Status:      domain.PeriodStatusActive,
	})
	for i, amount := range []int64{25, 30, 15} {
		tripRepo.AddTrip(&domain.Trip{
			ID:            string(rune('a' + i)),
			PeriodID:      "period-1",
			TransportType: domain.TransportTaipeiMetro,
			Amount:        amount,
		})
	}
	svc, _, _ := newPeriodService(periodRepo, tripRepo)

	stats, err := svc.PeriodStats(context.Background(), "period-1", date(2025, time.March, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalAmount != 70 {
		t.Errorf("expected total 70, got %d", stats.TotalAmount)
	}
	if stats.TripCount != 3 {
		t.Errorf("expected 3 trips, got %d", stats.TripCount)
	}
	if stats.DaysElapsed != 10 {
		t.Errorf("expected 10 days elapsed, got %d", stats.DaysElapsed)
	}

	// Stats are never cached; the same query recomputes and agrees.
	again, err := svc.PeriodStats(context.Background(), "period-1", date(2025, time.March, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(again, stats) {
		t.Error("expected identical stats on recomputation")
	}
}

func TestGlobalStats_AcrossPeriods(t *testing.T) {
	t.Parallel()

	periodRepo := NewMockPeriodRepository()
	tripRepo := NewMockTripRepository()
	periodRepo.AddPeriod(&domain.Period{
		ID: "period-1", TicketPrice: 1200, Status: domain.PeriodStatusCompleted,
		StartDate: date(2025, time.January, 1), EndDate: date(2025, time.January, 30),
	})
	periodRepo.AddPeriod(&domain.Period{
		ID: "period-2", TicketPrice: 1200, Status: domain.PeriodStatusActive,
		StartDate: date(2025, time.February, 1), EndDate: date(2025, time.March, 2),
	})
	tripRepo.AddTrip(&domain.Trip{ID: "t1", PeriodID: "period-1", TransportType: domain.TransportBus, Amount: 1500})
	tripRepo.AddTrip(&domain.Trip{ID: "t2", PeriodID: "period-2", TransportType: domain.TransportTRA, Amount: 800})
	svc, _, _ := newPeriodService(periodRepo, tripRepo)

	stats, err := svc.GlobalStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalPeriods != 2 {
		t.Errorf("expected 2 periods, got %d", stats.TotalPeriods)
	}
	if stats.TotalTicketCost != 2400 {
		t.Errorf("expected ticket cost 2400, got %d", stats.TotalTicketCost)
	}
	if stats.TotalTripAmount != 2300 {
		t.Errorf("expected trip amount 2300, got %d", stats.TotalTripAmount)
	}
	if stats.TotalTripCount != 2 {
		t.Errorf("expected 2 trips, got %d", stats.TotalTripCount)
	}
}
