package fare

// Input-range predicates shared by the calculator and its callers. These only
// classify validity; rejecting invalid input is the caller's job.

const (
	maxAmount      int64 = 10000
	minDurationMin       = 1
	maxDurationMin       = 1440
	minSegments          = 1
	maxSegments          = 10
)

// ValidAmount reports whether amount is a usable trip amount: (0, 10000].
func ValidAmount(amount int64) bool {
	return amount > 0 && amount <= maxAmount
}

// ValidYouBikeAmount is the relaxed amount check for YouBike trips, which may
// legitimately be free: [0, 10000].
func ValidYouBikeAmount(amount int64) bool {
	return amount >= 0 && amount <= maxAmount
}

// ValidDuration reports whether a YouBike duration is in [1, 1440] minutes.
func ValidDuration(minutes int) bool {
	return minutes >= minDurationMin && minutes <= maxDurationMin
}

// ValidSegments reports whether a bus segment count is in [1, 10].
func ValidSegments(segments int) bool {
	return segments >= minSegments && segments <= maxSegments
}
