package domain

import "time"

// DefaultBusFare is the initial per-segment bus fare in TWD.
const DefaultBusFare int64 = 15

// Settings holds user-adjustable defaults. A single row keyed by ID "default".
type Settings struct {
	ID             string
	DefaultBusFare int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() *Settings {
	return &Settings{
		ID:             "default",
		DefaultBusFare: DefaultBusFare,
	}
}
