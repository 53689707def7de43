// Package stats is the read-side projection over periods and trips. Every
// snapshot is recomputed in full from the inputs; nothing here is cached or
// incrementally maintained, so two calls with the same inputs are identical.
package stats

import (
	"time"

	"tpass/internal/domain"
)

// ComputePeriodStats aggregates the trips of one period into a statistics
// snapshot as of now. The trip set must already be filtered to the period;
// ordering does not matter. Inputs are not mutated.
func ComputePeriodStats(period *domain.Period, trips []*domain.Trip, now time.Time) *domain.PeriodStats {
	var total int64
	for _, t := range trips {
		total += t.Amount
	}

	elapsed := DaysElapsed(period.StartDate, now)
	remaining := DaysRemaining(period.EndDate, now)

	var dailyAverage float64
	if elapsed > 0 {
		dailyAverage = float64(total) / float64(elapsed)
	}

	// Every known transport type appears in the breakdown, zero-valued when
	// unused, so callers can render complete mode lists without nil checks.
	breakdown := make(map[domain.TransportType]domain.TransportStat, len(domain.AllTransportTypes()))
	for _, tt := range domain.AllTransportTypes() {
		breakdown[tt] = domain.TransportStat{}
	}
	for _, t := range trips {
		s := breakdown[t.TransportType]
		s.Count++
		s.Amount += t.Amount
		breakdown[t.TransportType] = s
	}

	return &domain.PeriodStats{
		TotalAmount:        total,
		TripCount:          len(trips),
		SavedAmount:        total - period.TicketPrice,
		DaysElapsed:        elapsed,
		DaysRemaining:      remaining,
		DailyAverage:       dailyAverage,
		TransportBreakdown: breakdown,
	}
}

// ComputeGlobalStats aggregates across every period and trip ever recorded.
func ComputeGlobalStats(periods []*domain.Period, trips []*domain.Trip) *domain.GlobalStats {
	var ticketCost, tripAmount int64
	for _, p := range periods {
		ticketCost += p.TicketPrice
	}
	for _, t := range trips {
		tripAmount += t.Amount
	}

	return &domain.GlobalStats{
		TotalPeriods:     len(periods),
		TotalTicketCost:  ticketCost,
		TotalTripAmount:  tripAmount,
		TotalSavedAmount: tripAmount - ticketCost,
		TotalTripCount:   len(trips),
	}
}

// AmountToBreakEven returns how much more per-trip spend is needed before the
// ticket price is fully offset; 0 once the pass has paid for itself.
func AmountToBreakEven(currentAmount, ticketPrice int64) int64 {
	remaining := ticketPrice - currentAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DaysElapsed counts days since the period started, 1-based (the creation day
// is day 1) and clamped to the fixed period length even after expiry.
func DaysElapsed(startDate, now time.Time) int {
	days := daysBetween(startDate, now) + 1
	if days < 1 {
		return 1
	}
	if days > domain.PeriodLengthDays {
		return domain.PeriodLengthDays
	}
	return days
}

// DaysRemaining counts days left until the period ends, inclusive of today;
// never negative.
func DaysRemaining(endDate, now time.Time) int {
	days := daysBetween(now, endDate) + 1
	if days < 0 {
		return 0
	}
	return days
}

// daysBetween returns the whole-day difference between two dates, ignoring the
// time of day. Both dates are rebuilt as UTC midnights so the count is pure
// calendar arithmetic; subtracting local midnights would miscount across DST
// transitions, where a calendar day is not 24 hours.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
