package shuffle

import (
	"math/rand"
	"sort"

	"rondo/internal/clock"
	"rondo/internal/timeline"
)

// window is a preferred time-of-day range. End may exceed 24 when the
// window crosses midnight; start values are normalized at placement time.
type window struct {
	name  string
	start float64
	end   float64
}

func (w window) length() float64 { return w.end - w.start }

// dayPeriods partitions the day for the time-of-day strategy. Night runs
// 22:00–05:00 across midnight.
var dayPeriods = []window{
	{name: "morning", start: 5, end: 12},
	{name: "afternoon", start: 12, end: 17},
	{name: "evening", start: 17, end: 22},
	{name: "night", start: 22, end: 29},
}

// energyWindows maps an energy level to its preferred windows, tried in
// order before falling back to a whole-day search.
var energyWindows = map[string][]window{
	"high":   {{name: "early morning", start: 5, end: 9}, {name: "mid-morning", start: 9, end: 12}},
	"medium": {{name: "mid-morning", start: 9, end: 12}, {name: "afternoon", start: 12, end: 17}},
	"low":    {{name: "afternoon", start: 12, end: 17}, {name: "evening", start: 17, end: 22}},
}

// placeInWindow scans quarter-hour starts inside the window, beginning at
// preferred, and returns the first conflict-free start. The second return
// is false when the window has no room for the item.
func placeInWindow(it item, preferred float64, w window, obstacles []timeline.Obstacle, st timeline.Settings) (float64, bool) {
	if preferred < w.start {
		preferred = w.start
	}

	scan := func(from, to float64) (float64, bool) {
		for h := clock.QuarterRound(from); h+it.duration <= to; h += clock.Quarter {
			start := clock.NormalizeHour(h)
			if !st.WrapEnabled && start+it.duration > clock.HoursPerDay {
				continue
			}
			cand := timeline.Obstacle{ID: it.id, Start: start, Duration: it.duration}
			if !timeline.HasConflict(cand, obstacles, "", st) {
				return start, true
			}
		}
		return 0, false
	}

	if pos, ok := scan(preferred, w.end); ok {
		return pos, true
	}
	return scan(w.start, w.end)
}

// placeInPreferred tries each preferred window in turn.
func placeInPreferred(it item, windows []window, obstacles []timeline.Obstacle, st timeline.Settings) (float64, bool) {
	for _, w := range windows {
		if pos, ok := placeInWindow(it, w.start, w, obstacles, st); ok {
			return pos, true
		}
	}
	return 0, false
}

// timeOfDayLayout budgets blocks across the four day periods, largest
// first, then spaces each period's blocks evenly inside its window.
func timeOfDayLayout(items []item, obstacles []timeline.Obstacle, st timeline.Settings) []timeline.Move {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].duration > items[j].duration
	})

	assigned := make([][]item, len(dayPeriods))
	remaining := make([]float64, len(dayPeriods))
	for i, p := range dayPeriods {
		remaining[i] = p.length()
	}

	for _, it := range items {
		placed := false
		for i := range dayPeriods {
			if remaining[i] >= it.duration {
				assigned[i] = append(assigned[i], it)
				remaining[i] -= it.duration
				placed = true
				break
			}
		}
		if !placed {
			// Oversized for every remaining budget: charge the roomiest
			// period and let its budget go negative.
			best := 0
			for i := range remaining {
				if remaining[i] > remaining[best] {
					best = i
				}
			}
			assigned[best] = append(assigned[best], it)
			remaining[best] -= it.duration
		}
	}

	var moves []timeline.Move
	for i, p := range dayPeriods {
		group := assigned[i]
		if len(group) == 0 {
			continue
		}

		var total float64
		for _, it := range group {
			total += it.duration
		}
		gap := (p.length() - total) / float64(len(group)+1)
		if gap < 0 {
			gap = 0
		}

		cursor := p.start + gap
		for _, it := range group {
			if pos, ok := placeInWindow(it, cursor, p, obstacles, st); ok {
				moves = append(moves, commit(it, pos, &obstacles, st))
			} else {
				moves = append(moves, placeTight(it, &obstacles, st))
			}
			cursor += it.duration + gap
		}
	}
	return moves
}

// energyLayout tags every block with a random energy level for this run
// and routes each level through its preferred windows, high energy first.
func energyLayout(items []item, obstacles []timeline.Obstacle, st timeline.Settings, rng *rand.Rand) []timeline.Move {
	levels := []string{"high", "medium", "low"}

	groups := make(map[string][]item)
	for _, it := range items {
		lvl := levels[rng.Intn(len(levels))]
		groups[lvl] = append(groups[lvl], it)
	}

	moves := make([]timeline.Move, 0, len(items))
	for _, lvl := range levels {
		group := groups[lvl]
		shuffleItems(group, rng)
		for _, it := range group {
			if pos, ok := placeInPreferred(it, energyWindows[lvl], obstacles, st); ok {
				moves = append(moves, commit(it, pos, &obstacles, st))
			} else {
				moves = append(moves, placeTight(it, &obstacles, st))
			}
		}
	}
	return moves
}
