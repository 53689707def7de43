package fare

import (
	"strings"

	"tpass/internal/domain"
)

// table bundles one network's station list with its fare matrix and the
// name -> index map built alongside it. Tables are constructed once at package
// init and never mutated, so they are safe for concurrent readers.
type table struct {
	stations []domain.Station
	fares    [][]int64      // square, symmetric, zero diagonal; nil for taipei_metro
	index    map[string]int // station name -> matrix row/column
	byCode   map[string]int // station code -> position in stations
}

func newTable(stations []domain.Station, fares [][]int64) *table {
	t := &table{
		stations: stations,
		fares:    fares,
		index:    make(map[string]int, len(stations)),
		byCode:   make(map[string]int, len(stations)),
	}
	for i, s := range stations {
		// Transfer stations appear once per line on taipei_metro; resolve
		// names to their first occurrence, codes are unique.
		if _, ok := t.index[s.Name]; !ok {
			t.index[s.Name] = i
		}
		t.byCode[s.Code] = i
	}
	return t
}

// Fare returns the matrix fare between two stations identified by name.
// Returns 0 when either name is unknown; 0 means "unresolved", never a valid
// free ride, and callers must treat it that way.
func (t *table) Fare(from, to string) int64 {
	i, ok := t.index[from]
	if !ok {
		return 0
	}
	j, ok := t.index[to]
	if !ok {
		return 0
	}
	return t.fares[i][j]
}

var tables = map[domain.Network]*table{
	domain.NetworkTaipeiMetro:    newTable(taipeiMetroStations, nil),
	domain.NetworkNewTaipeiMetro: newTable(newTaipeiStations, newTaipeiFares),
	domain.NetworkTaoyuanMetro:   newTable(taoyuanStations, taoyuanFares),
	domain.NetworkDanhaiLRT:      newTable(danhaiStations, danhaiFares),
	domain.NetworkAnkengLRT:      newTable(ankengStations, ankengFares),
	domain.NetworkTRA:            newTable(traStations, traFares),
}

// Networks returns every network with station reference data.
func Networks() []domain.Network {
	return []domain.Network{
		domain.NetworkTaipeiMetro,
		domain.NetworkNewTaipeiMetro,
		domain.NetworkTaoyuanMetro,
		domain.NetworkDanhaiLRT,
		domain.NetworkAnkengLRT,
		domain.NetworkTRA,
	}
}

// Stations returns the station list for a network in line order.
// Returns nil for an unknown network.
func Stations(n domain.Network) []domain.Station {
	t, ok := tables[n]
	if !ok {
		return nil
	}
	out := make([]domain.Station, len(t.stations))
	copy(out, t.stations)
	return out
}

// SearchStations returns the stations of a network whose name, English name,
// or code contains the query (case-insensitive for latin text).
func SearchStations(n domain.Network, query string) []domain.Station {
	t, ok := tables[n]
	if !ok || query == "" {
		return nil
	}
	lower := strings.ToLower(query)
	var out []domain.Station
	for _, s := range t.stations {
		if strings.Contains(s.Name, query) ||
			strings.Contains(strings.ToLower(s.NameEn), lower) ||
			strings.Contains(strings.ToLower(s.Code), lower) {
			out = append(out, s)
		}
	}
	return out
}

// StationFare resolves a station-pair fare for the given network. For networks
// with an explicit matrix this is a direct symmetric lookup; taipei_metro goes
// through the common-routes table and the distance approximation instead.
// Unknown stations yield 0 on every network.
func StationFare(n domain.Network, from, to string) int64 {
	if n == domain.NetworkTaipeiMetro {
		return taipeiMetroFare(from, to)
	}
	t, ok := tables[n]
	if !ok {
		return 0
	}
	return t.Fare(from, to)
}
