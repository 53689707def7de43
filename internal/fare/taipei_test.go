package fare

import "testing"

func TestTaipeiMetroFare_CommonRoutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to string
		want     int64
	}{
		{"台北車站", "西門", 20},
		{"台北車站", "淡水", 50},
		{"台北車站", "動物園", 35},
		{"忠孝復興", "台北101/世貿", 25},
	}
	for _, c := range cases {
		if got := taipeiMetroFare(c.from, c.to); got != c.want {
			t.Errorf("%s->%s = %d, want %d", c.from, c.to, got, c.want)
		}
		// The shortcut table applies in both directions.
		if got := taipeiMetroFare(c.to, c.from); got != c.want {
			t.Errorf("%s->%s = %d, want %d", c.to, c.from, got, c.want)
		}
	}
}

func TestTaipeiMetroFare_SameStationIsMinimum(t *testing.T) {
	t.Parallel()

	if got := taipeiMetroFare("西門", "西門"); got != taipeiMinimumFare {
		t.Errorf("same-station fare = %d, want %d", got, taipeiMinimumFare)
	}
}

func TestTaipeiMetroFare_UnknownStationIsZero(t *testing.T) {
	t.Parallel()

	if got := taipeiMetroFare("西門", "不存在的站"); got != 0 {
		t.Errorf("unknown station fare = %d, want 0", got)
	}
	if got := taipeiMetroFare("不存在的站", "西門"); got != 0 {
		t.Errorf("unknown station fare = %d, want 0", got)
	}
}

func TestTaipeiMetroFare_EstimateProperties(t *testing.T) {
	t.Parallel()

	tab := tables["taipei_metro"]

	// Adjacent same-line stations land on the minimum fare.
	if got := taipeiMetroFare(tab.stations[0].Name, tab.stations[1].Name); got != 20 {
		t.Errorf("adjacent stations = %d, want 20", got)
	}

	// A cross-line trip costs at least the same-line estimate for the same
	// index distance, because transfers add distance units.
	from, to := "六張犁", "雙連"
	diff := tab.index[from] - tab.index[to]
	if diff < 0 {
		diff = -diff
	}
	baseline := fareByStationCount(diff)
	if cross := taipeiMetroFare(from, to); cross < baseline {
		t.Errorf("cross-line fare %d below same-distance baseline %d", cross, baseline)
	}
}

func TestFareByStationCount_Steps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		count int
		want  int64
	}{
		{1, 20}, {2, 20},
		{3, 25}, {4, 25},
		{6, 30},
		{8, 35},
		{10, 40},
		{12, 45},
		{15, 50},
		{18, 55},
		{22, 60},
		{23, 65}, {100, 65},
	}
	for _, c := range cases {
		if got := fareByStationCount(c.count); got != c.want {
			t.Errorf("fareByStationCount(%d) = %d, want %d", c.count, got, c.want)
		}
	}
}
