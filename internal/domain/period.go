package domain

import "time"

// PeriodStatus represents the lifecycle state of a TPASS period.
type PeriodStatus string

const (
	PeriodStatusActive    PeriodStatus = "active"
	PeriodStatusCompleted PeriodStatus = "completed"
)

// PeriodLengthDays is the fixed length of a TPASS period (inclusive window).
const PeriodLengthDays = 30

// DefaultTicketPrice is the standard TPASS ticket price in TWD.
const DefaultTicketPrice int64 = 1200

// Period represents one 30-day TPASS subscription cycle.
//
// EndDate is fixed at StartDate + 29 days when the period is created. The only
// mutation after creation is the one-way status transition active -> completed.
type Period struct {
	ID          string
	StartDate   time.Time // date-only, local
	EndDate     time.Time // StartDate + 29 days, date-only
	TicketPrice int64
	Status      PeriodStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PeriodEndDate returns the end date for a period starting at start
// (29 days later, so the window spans 30 days inclusive).
func PeriodEndDate(start time.Time) time.Time {
	return DateOnly(start).AddDate(0, 0, PeriodLengthDays-1)
}

// Ended reports whether the period has ended as of now, using date-only
// comparison: a period is considered ended strictly the day after EndDate.
func (p *Period) Ended(now time.Time) bool {
	return DateOnly(now).After(DateOnly(p.EndDate))
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TransportStat is the per-mode slice of a period breakdown.
type TransportStat struct {
	Count  int   `json:"count"`
	Amount int64 `json:"amount"`
}

// PeriodStats is the derived statistics snapshot for one period. It is
// recomputed from the period and its trips on every query and never persisted.
type PeriodStats struct {
	TotalAmount        int64                           `json:"total_amount"`
	TripCount          int                             `json:"trip_count"`
	SavedAmount        int64                           `json:"saved_amount"`
	DaysElapsed        int                             `json:"days_elapsed"`
	DaysRemaining      int                             `json:"days_remaining"`
	DailyAverage       float64                         `json:"daily_average"`
	TransportBreakdown map[TransportType]TransportStat `json:"transport_breakdown"`
}

// GlobalStats aggregates across all periods and trips. Derived, never persisted.
type GlobalStats struct {
	TotalPeriods     int   `json:"total_periods"`
	TotalTicketCost  int64 `json:"total_ticket_cost"`
	TotalTripAmount  int64 `json:"total_trip_amount"`
	TotalSavedAmount int64 `json:"total_saved_amount"`
	TotalTripCount   int   `json:"total_trip_count"`
}
