package fare

import (
	"testing"

	"tpass/internal/domain"
)

func TestCompute_Dispatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		params Params
		want   int64
	}{
		{
			name:   "station pair on a matrix network",
			params: StationPairParams{Type: domain.TransportDanhaiLRT, From: "紅樹林", To: "淡水行政中心"},
			want:   StationFare(domain.NetworkDanhaiLRT, "紅樹林", "淡水行政中心"),
		},
		{
			name:   "taipei metro common route",
			params: StationPairParams{Type: domain.TransportTaipeiMetro, From: "台北車站", To: "西門"},
			want:   20,
		},
		{
			name:   "station pair on a flat mode is unresolved",
			params: StationPairParams{Type: domain.TransportFerry, From: "a", To: "b"},
			want:   0,
		},
		{
			name:   "bus segments",
			params: BusParams{Segments: 2, FarePerSegment: 15},
			want:   30,
		},
		{
			name:   "youbike",
			params: YouBikeParams{Minutes: 45, City: domain.CityTaipei},
			want:   10,
		},
		{
			name:   "flat amount passes through",
			params: FlatParams{Type: domain.TransportHighwayBus, Amount: 120},
			want:   120,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := Compute(c.params); got != c.want {
				t.Errorf("Compute() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestCompute_MatrixFareIsPositive(t *testing.T) {
	t.Parallel()

	// Guards the dispatch test above against a degenerate 0 == 0 comparison.
	if StationFare(domain.NetworkDanhaiLRT, "紅樹林", "淡水行政中心") <= 0 {
		t.Fatal("expected a known Danhai pair to resolve")
	}
}
