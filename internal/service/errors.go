package service

import "errors"

var (
	// ErrInvalidPeriodID is returned when period ID is empty.
	ErrInvalidPeriodID = errors.New("invalid period id")

	// ErrInvalidTripID is returned when trip ID is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidStartDate is returned when a period start date is missing.
	ErrInvalidStartDate = errors.New("invalid start date")

	// ErrInvalidTicketPrice is returned when a ticket price is out of range.
	ErrInvalidTicketPrice = errors.New("invalid ticket price")

	// ErrActivePeriodExists is returned when creating a period while another is active.
	ErrActivePeriodExists = errors.New("an active period already exists")

	// ErrNoActivePeriod is returned when an operation requires an active period.
	ErrNoActivePeriod = errors.New("no active period")

	// ErrPeriodCreationLocked is returned when another period creation is in flight.
	ErrPeriodCreationLocked = errors.New("period creation in progress")

	// ErrInvalidTransportType is returned for an unsupported transport type.
	ErrInvalidTransportType = errors.New("invalid transport type")

	// ErrInvalidAmount is returned when a trip amount is out of range.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDuration is returned when a YouBike duration is out of range.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidSegments is returned when a bus segment count is out of range.
	ErrInvalidSegments = errors.New("invalid segments")

	// ErrInvalidCity is returned for an unsupported YouBike city.
	ErrInvalidCity = errors.New("invalid youbike city")

	// ErrUnresolvedFare is returned when a station-pair fare resolves to the
	// 0 sentinel and no manual amount was supplied.
	ErrUnresolvedFare = errors.New("fare could not be resolved for station pair")

	// ErrInvalidBusFare is returned when the default bus fare setting is out of range.
	ErrInvalidBusFare = errors.New("invalid default bus fare")
)
