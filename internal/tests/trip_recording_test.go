package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"tpass/internal/domain"
	"tpass/internal/service"
)

// ──────────────────────────────────────────────
// 4. TRIP RECORDING
// ──────────────────────────────────────────────

func newTripService(tripRepo *MockTripRepository, periodRepo *MockPeriodRepository) *service.TripService {
	settingsService := service.NewSettingsService(NewMockSettingsRepository(), NewMockCacheStore(), 0)
	return service.NewTripService(tripRepo, periodRepo, settingsService)
}

func activePeriodRepo() *MockPeriodRepository {
	periodRepo := NewMockPeriodRepository()
	periodRepo.AddPeriod(&domain.Period{
		ID:          "period-1",
		StartDate:   date(2025, time.March, 1),
		EndDate:     date(2025, time.March, 30),
		TicketPrice: 1200,
		Status:      domain.PeriodStatusActive,
	})
	return periodRepo
}

func TestRecordTrip_MetroFareComputed(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	svc := newTripService(tripRepo, activePeriodRepo())

	trip, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType:    domain.TransportTaipeiMetro,
		DepartureStation: "台北車站",
		ArrivalStation:   "西門",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.Amount != 20 {
		t.Errorf("expected fare 20, got %d", trip.Amount)
	}
	if trip.PeriodID != "period-1" {
		t.Errorf("expected trip on active period, got %s", trip.PeriodID)
	}
	if tripRepo.CountTrips() != 1 {
		t.Errorf("expected 1 stored trip, got %d", tripRepo.CountTrips())
	}
}

func TestRecordTrip_UnknownStationNeedsManualAmount(t *testing.T) {
	t.Parallel()

	svc := newTripService(NewMockTripRepository(), activePeriodRepo())

	_, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType:    domain.TransportDanhaiLRT,
		DepartureStation: "不存在的站",
		ArrivalStation:   "紅樹林",
	})
	if !errors.Is(err, service.ErrUnresolvedFare) {
		t.Errorf("expected ErrUnresolvedFare, got %v", err)
	}

	// The same pair records fine once the rider supplies the amount.
	trip, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType:    domain.TransportDanhaiLRT,
		DepartureStation: "不存在的站",
		ArrivalStation:   "紅樹林",
		Amount:           25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Amount != 25 {
		t.Errorf("expected manual amount 25, got %d", trip.Amount)
	}
}

func TestRecordTrip_NoActivePeriod(t *testing.T) {
	t.Parallel()

	svc := newTripService(NewMockTripRepository(), NewMockPeriodRepository())

	_, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType:    domain.TransportTaipeiMetro,
		DepartureStation: "台北車站",
		ArrivalStation:   "西門",
	})
	if !errors.Is(err, service.ErrNoActivePeriod) {
		t.Errorf("expected ErrNoActivePeriod, got %v", err)
	}
}

func TestRecordTrip_BusUsesConfiguredSegmentFare(t *testing.T) {
	t.Parallel()

	svc := newTripService(NewMockTripRepository(), activePeriodRepo())

	trip, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType: domain.TransportBus,
		RouteNumber:   "307",
		Segments:      2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Amount != 30 {
		t.Errorf("expected 2 segments at the default fare = 30, got %d", trip.Amount)
	}
}

func TestRecordTrip_BusSegmentValidation(t *testing.T) {
	t.Parallel()

	svc := newTripService(NewMockTripRepository(), activePeriodRepo())

	for _, segments := range []int{0, 11} {
		_, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
			TransportType: domain.TransportBus,
			Segments:      segments,
		})
		if !errors.Is(err, service.ErrInvalidSegments) {
			t.Errorf("segments=%d: expected ErrInvalidSegments, got %v", segments, err)
		}
	}
}

func TestRecordTrip_YouBikeWithinFreeWindow(t *testing.T) {
	t.Parallel()

	svc := newTripService(NewMockTripRepository(), activePeriodRepo())

	trip, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType: domain.TransportYouBike,
		Duration:      25,
		City:          domain.CityTaipei,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Amount != 0 {
		t.Errorf("expected free ride under 30 minutes, got %d", trip.Amount)
	}
}

func TestRecordTrip_YouBikeValidation(t *testing.T) {
	t.Parallel()

	svc := newTripService(NewMockTripRepository(), activePeriodRepo())

	_, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType: domain.TransportYouBike,
		Duration:      45,
		City:          "paris",
	})
	if !errors.Is(err, service.ErrInvalidCity) {
		t.Errorf("expected ErrInvalidCity, got %v", err)
	}

	_, err = svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType: domain.TransportYouBike,
		Duration:      1441,
		City:          domain.CityTaipei,
	})
	if !errors.Is(err, service.ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestRecordTrip_FlatModesRequireAmount(t *testing.T) {
	t.Parallel()

	svc := newTripService(NewMockTripRepository(), activePeriodRepo())

	_, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType: domain.TransportFerry,
		FerryRoute:    "淡水-八里",
	})
	if !errors.Is(err, service.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount without a fare, got %v", err)
	}

	trip, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType: domain.TransportFerry,
		FerryRoute:    "淡水-八里",
		Amount:        34,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Amount != 34 {
		t.Errorf("expected amount 34, got %d", trip.Amount)
	}
}

func TestRecordTrip_InvalidTransportType(t *testing.T) {
	t.Parallel()

	svc := newTripService(NewMockTripRepository(), activePeriodRepo())

	_, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType: "teleporter",
	})
	if !errors.Is(err, service.ErrInvalidTransportType) {
		t.Errorf("expected ErrInvalidTransportType, got %v", err)
	}
}

func TestRecordTrip_ClearsFieldsForeignToMode(t *testing.T) {
	t.Parallel()

	svc := newTripService(NewMockTripRepository(), activePeriodRepo())

	trip, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType:    domain.TransportTRA,
		DepartureStation: "台北",
		ArrivalStation:   "桃園",
		Segments:         3,
		Duration:         90,
		City:             domain.CityTaipei,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Segments != 0 || trip.Duration != 0 || trip.City != "" {
		t.Errorf("expected bus/youbike fields cleared on a rail trip, got segments=%d duration=%d city=%q",
			trip.Segments, trip.Duration, trip.City)
	}
}

// ──────────────────────────────────────────────
// 5. TRIP EDITING AND DELETION
// ──────────────────────────────────────────────

func TestUpdateTrip_RecomputesFare(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	svc := newTripService(tripRepo, activePeriodRepo())

	trip, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType:    domain.TransportTaipeiMetro,
		DepartureStation: "台北車站",
		ArrivalStation:   "西門",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.UpdateTrip(context.Background(), trip.ID, service.UpdateTripRequest{
		DepartureStation: "台北車站",
		ArrivalStation:   "淡水",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Amount != 50 {
		t.Errorf("expected recomputed fare 50, got %d", updated.Amount)
	}
	if updated.TransportType != domain.TransportTaipeiMetro {
		t.Errorf("transport type must not change on edit, got %s", updated.TransportType)
	}
}

func TestDeleteTrip(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	svc := newTripService(tripRepo, activePeriodRepo())

	trip, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType:    domain.TransportTaipeiMetro,
		DepartureStation: "台北車站",
		ArrivalStation:   "西門",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteTrip(context.Background(), trip.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tripRepo.CountTrips() != 0 {
		t.Errorf("expected no trips after delete, got %d", tripRepo.CountTrips())
	}

	if err := svc.DeleteTrip(context.Background(), ""); !errors.Is(err, service.ErrInvalidTripID) {
		t.Errorf("expected ErrInvalidTripID, got %v", err)
	}
}

// ──────────────────────────────────────────────
// 6. SETTINGS
// ──────────────────────────────────────────────

func TestSettings_DefaultsBeforeFirstSave(t *testing.T) {
	t.Parallel()

	svc := service.NewSettingsService(NewMockSettingsRepository(), NewMockCacheStore(), 0)

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.DefaultBusFare != domain.DefaultBusFare {
		t.Errorf("expected default bus fare %d, got %d", domain.DefaultBusFare, settings.DefaultBusFare)
	}
}

func TestSettings_UpdateBusFare(t *testing.T) {
	t.Parallel()

	settingsRepo := NewMockSettingsRepository()
	cacheStore := NewMockCacheStore()
	svc := service.NewSettingsService(settingsRepo, cacheStore, 0)

	settings, err := svc.UpdateBusFare(context.Background(), 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.DefaultBusFare != 18 {
		t.Errorf("expected bus fare 18, got %d", settings.DefaultBusFare)
	}
	if settingsRepo.SaveCallCount != 1 {
		t.Errorf("expected 1 save, got %d", settingsRepo.SaveCallCount)
	}
	if cacheStore.InvalidateSettingsCallCount != 1 {
		t.Errorf("expected 1 cache invalidation, got %d", cacheStore.InvalidateSettingsCallCount)
	}

	if _, err := svc.UpdateBusFare(context.Background(), 0); !errors.Is(err, service.ErrInvalidBusFare) {
		t.Errorf("expected ErrInvalidBusFare, got %v", err)
	}
}

func TestBusFareSettingFlowsIntoTrips(t *testing.T) {
	t.Parallel()

	settingsService := service.NewSettingsService(NewMockSettingsRepository(), NewMockCacheStore(), 0)
	if _, err := settingsService.UpdateBusFare(context.Background(), 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc := service.NewTripService(NewMockTripRepository(), activePeriodRepo(), settingsService)

	trip, err := svc.RecordTrip(context.Background(), service.RecordTripRequest{
		TransportType: domain.TransportBus,
		Segments:      3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Amount != 60 {
		t.Errorf("expected 3 segments at 20 = 60, got %d", trip.Amount)
	}
}
