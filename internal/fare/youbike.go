package fare

import "tpass/internal/domain"

// YouBike 2.0 fee schedule. The first block of minutes is free (60 in Taoyuan,
// 30 everywhere else); chargeable minutes are billed per started 30-minute
// block at escalating tier rates. Does not cover YouBike 2.0E (electric assist).
const (
	youbikeBlockMinutes = 30

	youbikeTier1Rate int64 = 10 // within the first 4 hours of the ride
	youbikeTier2Rate int64 = 20 // hours 4-8
	youbikeTier3Rate int64 = 40 // beyond 8 hours

	youbikeTierSpanMinutes = 240
)

// FreeMinutes returns the free-ride window for a YouBike city.
func FreeMinutes(city domain.YouBikeCity) int {
	if city == domain.CityTaoyuan {
		return 60
	}
	return 30
}

// YouBikeFee computes the fee in TWD for a ride of the given duration.
// Strictly non-decreasing in minutes for a fixed city; 0 within the free window.
func YouBikeFee(minutes int, city domain.YouBikeCity) int64 {
	free := FreeMinutes(city)
	if minutes <= free {
		return 0
	}

	remaining := minutes - free
	var fee int64

	// Tier 1 covers the first 4 hours of the ride, so its chargeable span is
	// 240 minutes minus the free window.
	tier1 := min(remaining, youbikeTierSpanMinutes-free)
	fee += blocks(tier1) * youbikeTier1Rate
	remaining -= tier1

	if remaining > 0 {
		tier2 := min(remaining, youbikeTierSpanMinutes)
		fee += blocks(tier2) * youbikeTier2Rate
		remaining -= tier2
	}

	if remaining > 0 {
		fee += blocks(remaining) * youbikeTier3Rate
	}

	return fee
}

// blocks rounds minutes up to whole 30-minute blocks.
func blocks(minutes int) int64 {
	return int64((minutes + youbikeBlockMinutes - 1) / youbikeBlockMinutes)
}
