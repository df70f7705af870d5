package timeline

import "rondo/internal/clock"

// Settings holds the global scheduling flags. A Settings value is passed
// into every conflict and placement call instead of being read off the
// collection, so the algorithms stay pure and testable in isolation.
type Settings struct {
	// WrapEnabled lets a block span past midnight, splitting its occupied
	// time into two ranges.
	WrapEnabled bool

	// AllowOverlap disables conflict rejection entirely.
	AllowOverlap bool

	// TimeFormat is display-only: clock.Format12h or clock.Format24h.
	TimeFormat string
}

// DefaultSettings returns the settings used when nothing is persisted.
func DefaultSettings() Settings {
	return Settings{TimeFormat: clock.Format24h}
}
