package timeline

import (
	"sort"

	"rondo/internal/clock"
)

// fits reports whether a span starting at start can exist at all under the
// settings: with wrapping disabled it may not run past midnight.
func fits(start, duration float64, st Settings) bool {
	return st.WrapEnabled || start+duration <= clock.HoursPerDay
}

// FindValidPosition returns a conflict-free start for a span of the given
// duration, preferring preferred. If the preferred slot conflicts it scans
// forward from midnight in quarter-hour steps and returns the first free
// slot. If all 96 slots conflict the preferred start is returned unchanged;
// the caller tolerates the resulting overlap.
func FindValidPosition(preferred, duration float64, obstacles []Obstacle, st Settings) float64 {
	p := clock.NormalizeHour(preferred)
	if fits(p, duration, st) &&
		!HasConflict(Obstacle{Start: p, Duration: duration}, obstacles, "", st) {
		return p
	}

	for i := 0; i < clock.QuartersPerDay; i++ {
		h := float64(i) * clock.Quarter
		if !fits(h, duration, st) {
			break
		}
		if !HasConflict(Obstacle{Start: h, Duration: duration}, obstacles, "", st) {
			return h
		}
	}

	// Best effort: nothing free anywhere.
	return p
}

// FreeGaps returns the maximal unoccupied intervals between the obstacles,
// ordered by start. With wrapping enabled the gap crossing midnight is
// reported as a single span whose End exceeds 24.
func FreeGaps(obstacles []Obstacle, st Settings) []clock.Span {
	if len(obstacles) == 0 {
		return []clock.Span{{Start: 0, End: clock.HoursPerDay}}
	}

	// Sweep over obstacle start/end events; a gap exists wherever the
	// open-interval counter sits at zero between two event times.
	type event struct {
		at    float64
		delta int
	}
	events := make([]event, 0, len(obstacles)*2)
	for _, o := range obstacles {
		for _, s := range clock.Spans(o.Start, o.Duration, st.WrapEnabled) {
			events = append(events,
				event{at: s.Start, delta: 1},
				event{at: s.End, delta: -1},
			)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].at == events[j].at {
			return events[i].delta < events[j].delta
		}
		return events[i].at < events[j].at
	})

	var gaps []clock.Span
	open := 0
	prev := events[0].at
	for _, ev := range events {
		if open == 0 && ev.at > prev {
			gaps = append(gaps, clock.Span{Start: prev, End: ev.at})
		}
		open += ev.delta
		prev = ev.at
	}

	first := events[0].at
	last := events[len(events)-1].at
	if st.WrapEnabled {
		if wrap := (clock.HoursPerDay - last) + first; wrap > 0 {
			gaps = append(gaps, clock.Span{Start: last, End: last + wrap})
		}
	} else {
		if first > 0 {
			gaps = append([]clock.Span{{Start: 0, End: first}}, gaps...)
		}
		if last < clock.HoursPerDay {
			gaps = append(gaps, clock.Span{Start: last, End: clock.HoursPerDay})
		}
	}
	return gaps
}

// FindBestGap returns the start of the smallest free gap that still fits
// the needed duration (best-fit, to keep fragmentation down). When no gap
// suffices it degrades to the first-fit quarter-hour scan, which itself
// degrades to hour 0. Deterministic for equal inputs.
func FindBestGap(needed float64, obstacles []Obstacle, st Settings) float64 {
	best := clock.Span{Start: -1}
	for _, g := range FreeGaps(obstacles, st) {
		if g.Duration() < needed {
			continue
		}
		if best.Start < 0 || g.Duration() < best.Duration() {
			best = g
		}
	}
	if best.Start >= 0 {
		return clock.NormalizeHour(best.Start)
	}
	return FindValidPosition(0, needed, obstacles, st)
}
