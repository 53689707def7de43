package stats

import (
	"reflect"
	"testing"
	"time"

	"tpass/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func testPeriod() *domain.Period {
	return &domain.Period{
		ID:          "period-1",
		StartDate:   date(2025, time.March, 1),
		EndDate:     date(2025, time.March, 30),
		TicketPrice: 1200,
		Status:      domain.PeriodStatusActive,
	}
}

func TestComputePeriodStats(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{
		{ID: "t1", TransportType: domain.TransportBus, Amount: 15},
		{ID: "t2", TransportType: domain.TransportBus, Amount: 15},
		{ID: "t3", TransportType: domain.TransportBus, Amount: 15},
		{ID: "t4", TransportType: domain.TransportTaipeiMetro, Amount: 25},
	}

	s := ComputePeriodStats(testPeriod(), trips, date(2025, time.March, 5))

	if s.TotalAmount != 70 {
		t.Errorf("total = %d, want 70", s.TotalAmount)
	}
	if s.TripCount != 4 {
		t.Errorf("count = %d, want 4", s.TripCount)
	}
	if s.SavedAmount != 70-1200 {
		t.Errorf("saved = %d, want %d", s.SavedAmount, 70-1200)
	}
	if s.DaysElapsed != 5 {
		t.Errorf("days elapsed = %d, want 5", s.DaysElapsed)
	}
	if s.DaysRemaining != 26 {
		t.Errorf("days remaining = %d, want 26", s.DaysRemaining)
	}
	if want := 70.0 / 5; s.DailyAverage != want {
		t.Errorf("daily average = %f, want %f", s.DailyAverage, want)
	}

	if got := s.TransportBreakdown[domain.TransportBus]; got.Count != 3 || got.Amount != 45 {
		t.Errorf("bus breakdown = %+v, want 3 trips for 45", got)
	}
}

func TestComputePeriodStats_BreakdownCoversEveryMode(t *testing.T) {
	t.Parallel()

	s := ComputePeriodStats(testPeriod(), nil, date(2025, time.March, 1))

	all := domain.AllTransportTypes()
	if len(s.TransportBreakdown) != len(all) {
		t.Fatalf("breakdown has %d modes, want %d", len(s.TransportBreakdown), len(all))
	}
	for _, tt := range all {
		stat, ok := s.TransportBreakdown[tt]
		if !ok {
			t.Errorf("mode %s missing from breakdown", tt)
		}
		if stat.Count != 0 || stat.Amount != 0 {
			t.Errorf("mode %s not zero-valued: %+v", tt, stat)
		}
	}
}

func TestComputePeriodStats_BreakdownSumsMatchTotals(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{
		{TransportType: domain.TransportTRA, Amount: 100},
		{TransportType: domain.TransportYouBike, Amount: 0},
		{TransportType: domain.TransportFerry, Amount: 34},
		{TransportType: domain.TransportTRA, Amount: 56},
	}

	s := ComputePeriodStats(testPeriod(), trips, date(2025, time.March, 15))

	var amount int64
	var count int
	for _, stat := range s.TransportBreakdown {
		amount += stat.Amount
		count += stat.Count
	}
	if amount != s.TotalAmount {
		t.Errorf("breakdown amount sum %d != total %d", amount, s.TotalAmount)
	}
	if count != s.TripCount {
		t.Errorf("breakdown count sum %d != trip count %d", count, s.TripCount)
	}
}

func TestComputePeriodStats_IdempotentAndInputsUnmutated(t *testing.T) {
	t.Parallel()

	period := testPeriod()
	trips := []*domain.Trip{
		{ID: "t1", TransportType: domain.TransportBus, Amount: 15},
		{ID: "t2", TransportType: domain.TransportTaipeiMetro, Amount: 25},
	}
	periodBefore := *period
	tripsBefore := make([]domain.Trip, len(trips))
	for i, trip := range trips {
		tripsBefore[i] = *trip
	}
	now := date(2025, time.March, 12)

	first := ComputePeriodStats(period, trips, now)
	second := ComputePeriodStats(period, trips, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two computations over identical inputs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}

	if *period != periodBefore {
		t.Errorf("period mutated: %+v -> %+v", periodBefore, period)
	}
	for i, trip := range trips {
		if *trip != tripsBefore[i] {
			t.Errorf("trip %s mutated: %+v -> %+v", trip.ID, tripsBefore[i], trip)
		}
	}
}

func TestDaysElapsed_Clamped(t *testing.T) {
	t.Parallel()

	start := date(2025, time.March, 1)

	// The creation day counts as day 1.
	if got := DaysElapsed(start, start); got != 1 {
		t.Errorf("same-day elapsed = %d, want 1", got)
	}
	// A clock behind the start date still reports day 1.
	if got := DaysElapsed(start, date(2025, time.February, 20)); got != 1 {
		t.Errorf("before-start elapsed = %d, want 1", got)
	}
	// Never exceeds the period length, even long after expiry.
	if got := DaysElapsed(start, date(2025, time.June, 1)); got != domain.PeriodLengthDays {
		t.Errorf("post-expiry elapsed = %d, want %d", got, domain.PeriodLengthDays)
	}
	// Time of day is ignored.
	lateNight := time.Date(2025, time.March, 2, 23, 59, 0, 0, time.Local)
	if got := DaysElapsed(start, lateNight); got != 2 {
		t.Errorf("late-night elapsed = %d, want 2", got)
	}
}

func TestDayCounts_UnaffectedByDST(t *testing.T) {
	t.Parallel()

	// In a DST-observing zone the spring-forward day is only 23 hours long;
	// day counting must still be calendar arithmetic. US DST started
	// 2025-03-09.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	start := time.Date(2025, time.March, 8, 0, 0, 0, 0, loc)
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, loc)
	if got := DaysElapsed(start, now); got != 3 {
		t.Errorf("elapsed across spring-forward = %d, want 3", got)
	}

	end := time.Date(2025, time.April, 6, 0, 0, 0, 0, loc)
	if got := DaysRemaining(end, now); got != 28 {
		t.Errorf("remaining across spring-forward = %d, want 28", got)
	}
}

func TestDaysRemaining_NeverNegative(t *testing.T) {
	t.Parallel()

	end := date(2025, time.March, 30)

	if got := DaysRemaining(end, date(2025, time.March, 30)); got != 1 {
		t.Errorf("end-date remaining = %d, want 1", got)
	}
	if got := DaysRemaining(end, date(2025, time.April, 15)); got != 0 {
		t.Errorf("post-end remaining = %d, want 0", got)
	}
}

func TestAmountToBreakEven(t *testing.T) {
	t.Parallel()

	if got := AmountToBreakEven(0, 1200); got != 1200 {
		t.Errorf("break-even from zero = %d, want 1200", got)
	}
	if got := AmountToBreakEven(700, 1200); got != 500 {
		t.Errorf("break-even at 700 = %d, want 500", got)
	}
	if got := AmountToBreakEven(1500, 1200); got != 0 {
		t.Errorf("break-even past the price = %d, want 0", got)
	}
}

func TestComputeGlobalStats_Empty(t *testing.T) {
	t.Parallel()

	s := ComputeGlobalStats(nil, nil)
	if s.TotalPeriods != 0 || s.TotalTripCount != 0 || s.TotalSavedAmount != 0 {
		t.Errorf("empty global stats not zero-valued: %+v", s)
	}
}
