// Package clock provides pure arithmetic over the circular 24-hour day.
// All hour values are real numbers of hours since midnight; the domain
// wraps at 24, so 25.5 and 1.5 name the same instant.
package clock

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// HoursPerDay is the size of the circular domain.
	HoursPerDay = 24.0

	// Quarter is the smallest scheduling step, in hours.
	Quarter = 0.25

	// QuartersPerDay bounds every placement search loop.
	QuartersPerDay = 96
)

// ErrInvalidHour is returned when an hour string cannot be parsed.
var ErrInvalidHour = errors.New("hour must be HH:MM or a decimal number of hours")

// NormalizeHour maps any hour value into [0, 24). Negative values wrap
// backwards, so NormalizeHour(-1) == 23.
func NormalizeHour(h float64) float64 {
	h = math.Mod(h, HoursPerDay)
	if h < 0 {
		h += HoursPerDay
	}
	return h
}

// QuarterRound rounds an hour value to the nearest quarter hour.
func QuarterRound(h float64) float64 {
	return math.Round(h*4) / 4
}

// Span is a half-open [Start, End) interval within a single day.
type Span struct {
	Start float64
	End   float64
}

// Duration returns the length of the span in hours.
func (s Span) Duration() float64 {
	return s.End - s.Start
}

// Spans returns the occupied ranges of an interval beginning at start and
// lasting duration hours. When the interval runs past midnight and wrapping
// is enabled it splits into two disjoint spans; with wrapping disabled the
// end is clamped to 24 instead.
func Spans(start, duration float64, wrapEnabled bool) []Span {
	s := NormalizeHour(start)
	end := s + duration
	if end <= HoursPerDay {
		return []Span{{Start: s, End: end}}
	}
	if !wrapEnabled {
		return []Span{{Start: s, End: HoursPerDay}}
	}
	return []Span{
		{Start: s, End: HoursPerDay},
		{Start: 0, End: NormalizeHour(end)},
	}
}

// RangesOverlap reports whether two half-open hour ranges intersect.
//
// All four bounds are normalized into [0, 24); an end landing exactly on
// midnight closes the range at 24 rather than collapsing it to zero width.
// A range whose normalized end is not after its start wraps past midnight.
// With wrapAllowed false a wrapping range is clamped at 24 instead.
//
// When both ranges wrap the function reports true without further
// geometry: two ranges crossing midnight always meet near the boundary.
// This conservative shortcut is intentional and load-bearing for callers.
func RangesOverlap(start1, end1, start2, end2 float64, wrapAllowed bool) bool {
	s1 := NormalizeHour(start1)
	e1 := NormalizeHour(end1)
	s2 := NormalizeHour(start2)
	e2 := NormalizeHour(end2)

	if e1 == 0 {
		e1 = HoursPerDay
	}
	if e2 == 0 {
		e2 = HoursPerDay
	}

	wraps1 := e1 <= s1
	wraps2 := e2 <= s2

	if !wrapAllowed {
		if wraps1 {
			e1 = HoursPerDay
			wraps1 = false
		}
		if wraps2 {
			e2 = HoursPerDay
			wraps2 = false
		}
	}

	switch {
	case !wraps1 && !wraps2:
		return s1 < e2 && e1 > s2
	case wraps1 && wraps2:
		return true
	case wraps1:
		// Range 1 covers [s1, 24) plus [0, e1).
		return s2 < e1 || e2 > s1
	default:
		return s1 < e2 || e1 > s2
	}
}

// ParseHour parses an hour value from user input. It accepts "HH:MM" clock
// strings and plain decimal hours ("13.5"). The result is normalized into
// [0, 24).
func ParseHour(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidHour
	}

	if h, m, ok := strings.Cut(s, ":"); ok {
		hours, err := strconv.Atoi(h)
		if err != nil || hours < 0 {
			return 0, ErrInvalidHour
		}
		mins, err := strconv.Atoi(m)
		if err != nil || mins < 0 || mins > 59 || len(m) != 2 {
			return 0, ErrInvalidHour
		}
		return NormalizeHour(float64(hours) + float64(mins)/60), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidHour
	}
	return NormalizeHour(v), nil
}

// ParseDuration parses a duration in hours from user input. It accepts
// "H:MM" and decimal forms and rejects non-positive values.
func ParseDuration(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("duration cannot be empty")
	}

	var v float64
	if h, m, ok := strings.Cut(s, ":"); ok {
		hours, err := strconv.Atoi(h)
		if err != nil || hours < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		mins, err := strconv.Atoi(m)
		if err != nil || mins < 0 || mins > 59 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		v = float64(hours) + float64(mins)/60
	} else {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		v = f
	}

	if v <= 0 {
		return 0, errors.New("duration must be positive")
	}
	return v, nil
}

// Format selects between 12-hour and 24-hour clock rendering.
const (
	Format12h = "12h"
	Format24h = "24h"
)

// FormatHour renders an hour value as a clock string in the given format.
// Values are normalized first, so FormatHour(25.5, Format24h) == "01:30".
func FormatHour(h float64, format string) string {
	h = NormalizeHour(h)
	hours := int(h)
	mins := int(math.Round((h - float64(hours)) * 60))
	if mins == 60 {
		hours = (hours + 1) % 24
		mins = 0
	}

	if format == Format12h {
		suffix := "AM"
		display := hours
		switch {
		case hours == 0:
			display = 12
		case hours == 12:
			suffix = "PM"
		case hours > 12:
			display = hours - 12
			suffix = "PM"
		}
		return fmt.Sprintf("%d:%02d %s", display, mins, suffix)
	}
	return fmt.Sprintf("%02d:%02d", hours, mins)
}

// FormatSpan renders "start–end" for a block at start lasting duration.
func FormatSpan(start, duration float64, format string) string {
	return FormatHour(start, format) + "–" + FormatHour(start+duration, format)
}

// FormatDurationHours renders a duration as "2h", "45m" or "1h 15m".
func FormatDurationHours(d float64) string {
	mins := int(math.Round(d * 60))
	h := mins / 60
	m := mins % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
