// Package fare converts trip parameters into whole-TWD amounts for every
// TPASS-covered transport mode.
//
// All functions are pure and never fail: a fare that cannot be resolved
// (unknown station, unsupported mode) degrades to 0. Zero is a sentinel for
// "unresolved" on station-based modes, which never legitimately cost 0, and
// callers must not treat it as a free ride.
package fare

import "tpass/internal/domain"

// Params is the mode-specific input to Compute. Exactly one variant exists per
// transport mode family, so dispatch is a single exhaustive type switch.
type Params interface {
	transportType() domain.TransportType
}

// StationPairParams is the input for rail networks billed by station pair.
type StationPairParams struct {
	Type domain.TransportType
	From string
	To   string
}

func (p StationPairParams) transportType() domain.TransportType { return p.Type }

// BusParams is the input for segment-billed bus trips.
type BusParams struct {
	Segments       int
	FarePerSegment int64 // 0 means the configured default
}

func (BusParams) transportType() domain.TransportType { return domain.TransportBus }

// YouBikeParams is the input for time-tiered YouBike rides.
type YouBikeParams struct {
	Minutes int
	City    domain.YouBikeCity
}

func (YouBikeParams) transportType() domain.TransportType { return domain.TransportYouBike }

// FlatParams is the input for modes without a computed fare (highway bus,
// ferry): the caller supplies the amount directly.
type FlatParams struct {
	Type   domain.TransportType
	Amount int64
}

func (p FlatParams) transportType() domain.TransportType { return p.Type }

// networkFor maps station-pair transport types to their fare network.
var networkFor = map[domain.TransportType]domain.Network{
	domain.TransportTaipeiMetro:    domain.NetworkTaipeiMetro,
	domain.TransportNewTaipeiMetro: domain.NetworkNewTaipeiMetro,
	domain.TransportTaoyuanMetro:   domain.NetworkTaoyuanMetro,
	domain.TransportDanhaiLRT:      domain.NetworkDanhaiLRT,
	domain.TransportAnkengLRT:      domain.NetworkAnkengLRT,
	domain.TransportTRA:            domain.NetworkTRA,
}

// Compute resolves the fare amount for one trip. Unresolvable inputs return 0.
func Compute(p Params) int64 {
	switch v := p.(type) {
	case StationPairParams:
		network, ok := networkFor[v.Type]
		if !ok {
			return 0
		}
		return StationFare(network, v.From, v.To)
	case BusParams:
		return BusFare(v.Segments, v.FarePerSegment)
	case YouBikeParams:
		return YouBikeFee(v.Minutes, v.City)
	case FlatParams:
		return v.Amount
	default:
		return 0
	}
}
