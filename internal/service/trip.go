package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tpass/internal/domain"
	"tpass/internal/fare"
	"tpass/internal/repository"
)

// TripService records, edits, and deletes trips against the active period.
type TripService struct {
	tripRepo   repository.TripRepository
	periodRepo repository.PeriodRepository
	settings   *SettingsService
}

// NewTripService creates a new TripService.
func NewTripService(tripRepo repository.TripRepository, periodRepo repository.PeriodRepository, settings *SettingsService) *TripService {
	return &TripService{
		tripRepo:   tripRepo,
		periodRepo: periodRepo,
		settings:   settings,
	}
}

// RecordTripRequest carries the parameters for recording one trip.
//
// Amount is an optional manual override; when 0 the fare is computed from the
// mode-specific fields. Station-pair modes whose fare resolves to 0 require an
// override, since 0 is never a legitimate rail fare.
type RecordTripRequest struct {
	TransportType    domain.TransportType
	DepartureStation string
	ArrivalStation   string
	RouteNumber      string
	Segments         int
	Duration         int
	City             domain.YouBikeCity
	FerryRoute       string
	Amount           int64
	Timestamp        time.Time
	Note             string
}

// RecordTrip validates the request, resolves the fare, and persists a new
// trip attributed to the active period.
func (s *TripService) RecordTrip(ctx context.Context, req RecordTripRequest) (*domain.Trip, error) {
	if !domain.ValidTransportType(req.TransportType) {
		return nil, ErrInvalidTransportType
	}

	period, err := s.periodRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, ErrNoActivePeriod
	}

	amount, err := s.resolveAmount(ctx, &req)
	if err != nil {
		return nil, err
	}

	timestamp := req.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	now := time.Now()
	trip := &domain.Trip{
		ID:               uuid.New().String(),
		PeriodID:         period.ID,
		TransportType:    req.TransportType,
		DepartureStation: req.DepartureStation,
		ArrivalStation:   req.ArrivalStation,
		RouteNumber:      req.RouteNumber,
		Segments:         req.Segments,
		Duration:         req.Duration,
		City:             req.City,
		FerryRoute:       req.FerryRoute,
		Amount:           amount,
		Timestamp:        timestamp,
		Note:             req.Note,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// UpdateTripRequest carries the editable fields of an existing trip. The
// owning period and transport type are fixed at recording time.
type UpdateTripRequest struct {
	DepartureStation string
	ArrivalStation   string
	RouteNumber      string
	Segments         int
	Duration         int
	City             domain.YouBikeCity
	FerryRoute       string
	Amount           int64
	Timestamp        time.Time
	Note             string
}

// UpdateTrip edits an existing trip, re-resolving the fare from the updated
// fields under the same rules as RecordTrip.
func (s *TripService) UpdateTrip(ctx context.Context, id string, req UpdateTripRequest) (*domain.Trip, error) {
	if id == "" {
		return nil, ErrInvalidTripID
	}

	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resolve := RecordTripRequest{
		TransportType:    trip.TransportType,
		DepartureStation: req.DepartureStation,
		ArrivalStation:   req.ArrivalStation,
		Segments:         req.Segments,
		Duration:         req.Duration,
		City:             req.City,
		Amount:           req.Amount,
	}
	amount, err := s.resolveAmount(ctx, &resolve)
	if err != nil {
		return nil, err
	}

	trip.DepartureStation = req.DepartureStation
	trip.ArrivalStation = req.ArrivalStation
	trip.RouteNumber = req.RouteNumber
	trip.Segments = resolve.Segments
	trip.Duration = resolve.Duration
	trip.City = resolve.City
	trip.FerryRoute = req.FerryRoute
	trip.Amount = amount
	if !req.Timestamp.IsZero() {
		trip.Timestamp = req.Timestamp
	}
	trip.Note = req.Note
	trip.UpdatedAt = time.Now()

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	if id == "" {
		return nil, ErrInvalidTripID
	}
	return s.tripRepo.GetByID(ctx, id)
}

// ListByPeriod retrieves all trips belonging to a period.
func (s *TripService) ListByPeriod(ctx context.Context, periodID string) ([]*domain.Trip, error) {
	if periodID == "" {
		return nil, ErrInvalidPeriodID
	}
	return s.tripRepo.GetByPeriodID(ctx, periodID)
}

// DeleteTrip removes a trip.
func (s *TripService) DeleteTrip(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidTripID
	}
	return s.tripRepo.Delete(ctx, id)
}

// resolveAmount validates the mode-specific fields and returns the trip
// amount, either the manual override or the computed fare. It normalizes
// fields that do not apply to the mode back to their zero values.
func (s *TripService) resolveAmount(ctx context.Context, req *RecordTripRequest) (int64, error) {
	switch req.TransportType {
	case domain.TransportTaipeiMetro, domain.TransportNewTaipeiMetro,
		domain.TransportTaoyuanMetro, domain.TransportDanhaiLRT,
		domain.TransportAnkengLRT, domain.TransportTRA:
		req.Segments, req.Duration, req.City = 0, 0, ""
		if req.Amount != 0 {
			if !fare.ValidAmount(req.Amount) {
				return 0, ErrInvalidAmount
			}
			return req.Amount, nil
		}
		amount := fare.Compute(fare.StationPairParams{
			Type: req.TransportType,
			From: req.DepartureStation,
			To:   req.ArrivalStation,
		})
		if amount == 0 {
			return 0, ErrUnresolvedFare
		}
		return amount, nil

	case domain.TransportBus:
		req.Duration, req.City = 0, ""
		if req.Amount != 0 {
			if !fare.ValidAmount(req.Amount) {
				return 0, ErrInvalidAmount
			}
			return req.Amount, nil
		}
		if !fare.ValidSegments(req.Segments) {
			return 0, ErrInvalidSegments
		}
		return fare.Compute(fare.BusParams{
			Segments:       req.Segments,
			FarePerSegment: s.settings.DefaultBusFare(ctx),
		}), nil

	case domain.TransportYouBike:
		req.Segments = 0
		if !domain.ValidYouBikeCity(req.City) {
			return 0, ErrInvalidCity
		}
		if req.Amount != 0 {
			if !fare.ValidYouBikeAmount(req.Amount) {
				return 0, ErrInvalidAmount
			}
			return req.Amount, nil
		}
		if !fare.ValidDuration(req.Duration) {
			return 0, ErrInvalidDuration
		}
		return fare.Compute(fare.YouBikeParams{
			Minutes: req.Duration,
			City:    req.City,
		}), nil

	case domain.TransportHighwayBus, domain.TransportFerry:
		req.Segments, req.Duration, req.City = 0, 0, ""
		if !fare.ValidAmount(req.Amount) {
			return 0, ErrInvalidAmount
		}
		return req.Amount, nil

	default:
		return 0, ErrInvalidTransportType
	}
}
