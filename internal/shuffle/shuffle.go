// Package shuffle implements the batch re-layout strategies. Every
// strategy reorders the unlocked blocks by its own heuristic and then
// delegates placement to the timeline's search primitives; locked blocks
// are read-only obstacles throughout.
package shuffle

import (
	"fmt"
	"math/rand"

	"rondo/internal/timeline"
)

// Strategy names a re-packing algorithm.
type Strategy string

const (
	Random    Strategy = "random"
	Compact   Strategy = "compact"
	Spread    Strategy = "spread"
	Clustered Strategy = "clustered"
	TimeOfDay Strategy = "timeofday"
	Priority  Strategy = "priority"
	Energy    Strategy = "energy"
	Balanced  Strategy = "balanced"
	Theme     Strategy = "theme"
)

// Strategies returns all strategies in display/cycling order.
func Strategies() []Strategy {
	return []Strategy{
		Random, Compact, Spread, Clustered, TimeOfDay,
		Priority, Energy, Balanced, Theme,
	}
}

// Parse resolves a strategy name.
func Parse(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q", name)
}

// Description returns a one-line summary for help output.
func (s Strategy) Description() string {
	switch s {
	case Random:
		return "random order with occasional breathing room"
	case Compact:
		return "largest first, packed into the tightest gaps"
	case Spread:
		return "even gaps across the whole day"
	case Clustered:
		return "grouped by duration: short, medium, long"
	case TimeOfDay:
		return "budgeted across morning, afternoon, evening, night"
	case Priority:
		return "high priority first"
	case Energy:
		return "high energy in the morning, low in the evening"
	case Balanced:
		return "categories interleaved for variety"
	case Theme:
		return "themed runs: work, learning, health, personal"
	default:
		return string(s)
	}
}

// Result reports what a strategy application did.
type Result struct {
	Strategy Strategy
	Moved    int
	Forced   int // blocks placed despite conflicts after an exhausted search
}

// Message renders the "strategy applied" notification text.
func (r Result) Message() string {
	if r.Forced > 0 {
		return fmt.Sprintf("applied %s to %d blocks (%d forced into overlaps)",
			r.Strategy, r.Moved, r.Forced)
	}
	return fmt.Sprintf("applied %s to %d blocks", r.Strategy, r.Moved)
}

// item is the movable view of an unlocked block during layout.
type item struct {
	id       string
	title    string
	duration float64
}

// Apply re-packs the unlocked blocks of tl using the given strategy. The
// rng drives every random choice, so a seeded source makes the layout
// reproducible. Empty input is a no-op.
func Apply(tl *timeline.Timeline, s Strategy, rng *rand.Rand) (Result, error) {
	st := tl.Settings()

	var movable []item
	var obstacles []timeline.Obstacle
	for _, b := range tl.Blocks() {
		if b.Locked {
			obstacles = append(obstacles, timeline.Obstacle{
				ID: b.ID, Start: b.Start, Duration: b.Duration,
			})
			continue
		}
		movable = append(movable, item{id: b.ID, title: b.Title, duration: b.Duration})
	}
	if len(movable) == 0 {
		return Result{Strategy: s}, nil
	}

	var moves []timeline.Move
	switch s {
	case Random:
		moves = randomLayout(movable, obstacles, st, rng)
	case Compact:
		moves = compactLayout(movable, obstacles, st)
	case Spread:
		moves = spreadLayout(movable, obstacles, st, rng)
	case Clustered:
		moves = clusteredLayout(movable, obstacles, st, rng)
	case TimeOfDay:
		moves = timeOfDayLayout(movable, obstacles, st)
	case Priority:
		moves = priorityLayout(movable, obstacles, st, rng)
	case Energy:
		moves = energyLayout(movable, obstacles, st, rng)
	case Balanced:
		moves = balancedLayout(movable, obstacles, st, rng)
	case Theme:
		moves = themeLayout(movable, obstacles, st, rng)
	default:
		return Result{}, fmt.Errorf("unknown strategy %q", s)
	}

	if err := tl.ApplyLayout(moves); err != nil {
		return Result{}, err
	}

	r := Result{Strategy: s, Moved: len(moves)}
	for _, m := range moves {
		if m.Forced {
			r.Forced++
		}
	}
	return r, nil
}
