package domain

import "time"

// Trip is one recorded instance of paid transit use, attributed to a period.
//
// Amount is a whole-TWD integer, produced by the fare calculator (or entered
// manually) when the trip is recorded or edited. It is never recomputed
// retroactively.
type Trip struct {
	ID            string
	PeriodID      string
	TransportType TransportType

	// Mode-specific fields; zero values mean "not applicable to this mode".
	DepartureStation string
	ArrivalStation   string
	RouteNumber      string // bus / highway bus
	Segments         int    // bus
	Duration         int    // YouBike, in minutes
	City             YouBikeCity
	FerryRoute       string

	Amount    int64
	Timestamp time.Time
	Note      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
