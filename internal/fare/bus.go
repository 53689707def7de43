package fare

import "tpass/internal/domain"

// BusFare computes a segment-billed bus fare. farePerSegment comes from user
// settings; pass 0 (or negative) to use the initial default.
func BusFare(segments int, farePerSegment int64) int64 {
	if farePerSegment <= 0 {
		farePerSegment = domain.DefaultBusFare
	}
	return int64(segments) * farePerSegment
}

// RefundEstimate returns the TPASS refund for returning the pass after
// daysElapsed days: ticket price minus 300 TWD per elapsed day minus a 20 TWD
// handling fee. Negative means no refund is available.
func RefundEstimate(ticketPrice int64, daysElapsed int) int64 {
	const (
		perDayDeduction int64 = 300
		handlingFee     int64 = 20
	)
	return ticketPrice - int64(daysElapsed)*perDayDeduction - handlingFee
}
