package shuffle

import (
	"math/rand"
	"strings"

	"rondo/internal/timeline"
)

// Priority, energy and category tags are assigned fresh on every shuffle
// run and never persisted, so consecutive runs can classify the same block
// differently. That novelty is the point of these strategies; the theme
// tag is the only deterministic one.

// chainLayout places items back to back from midnight with a fixed gap
// between neighbours.
func chainLayout(items []item, obstacles []timeline.Obstacle, st timeline.Settings, gap float64) []timeline.Move {
	moves := make([]timeline.Move, 0, len(items))
	cursor := 0.0
	for i, it := range items {
		if i > 0 {
			cursor += gap
		}
		m := placeNear(it, cursor, &obstacles, st)
		moves = append(moves, m)
		cursor = m.Start + it.duration
	}
	return moves
}

// priorityLayout orders blocks high → medium → low with random order
// inside each tier.
func priorityLayout(items []item, obstacles []timeline.Obstacle, st timeline.Settings, rng *rand.Rand) []timeline.Move {
	tiers := []string{"high", "medium", "low"}

	groups := make(map[string][]item)
	for _, it := range items {
		tier := tiers[rng.Intn(len(tiers))]
		groups[tier] = append(groups[tier], it)
	}

	ordered := make([]item, 0, len(items))
	for _, tier := range tiers {
		g := groups[tier]
		shuffleItems(g, rng)
		ordered = append(ordered, g...)
	}
	return chainLayout(ordered, obstacles, st, 0)
}

// balanceCategories are the five fixed categories the balanced strategy
// interleaves.
var balanceCategories = []string{"work", "personal", "health", "learning", "rest"}

// balancedLayout deals blocks into the five categories and interleaves
// them round-robin so no stretch of the day is all one kind.
func balancedLayout(items []item, obstacles []timeline.Obstacle, st timeline.Settings, rng *rand.Rand) []timeline.Move {
	buckets := make([][]item, len(balanceCategories))
	for _, it := range items {
		c := rng.Intn(len(balanceCategories))
		buckets[c] = append(buckets[c], it)
	}
	for i := range buckets {
		shuffleItems(buckets[i], rng)
	}

	ordered := make([]item, 0, len(items))
	for done := false; !done; {
		done = true
		for i := range buckets {
			if len(buckets[i]) > 0 {
				ordered = append(ordered, buckets[i][0])
				buckets[i] = buckets[i][1:]
				done = false
			}
		}
	}
	return chainLayout(ordered, obstacles, st, 0)
}

// themes are laid out in this fixed order.
var themes = []string{"work", "learning", "health", "personal"}

var themeKeywords = map[string][]string{
	"work":     {"work", "meeting", "email", "project", "call", "review", "plan", "standup"},
	"learning": {"learn", "study", "read", "course", "class", "practice", "tutorial"},
	"health":   {"gym", "run", "workout", "walk", "yoga", "exercise", "stretch", "meditat"},
}

// themeOf classifies a block by title keywords. Unmatched titles land in
// the personal theme.
func themeOf(title string) string {
	lower := strings.ToLower(title)
	for _, theme := range []string{"work", "learning", "health"} {
		for _, kw := range themeKeywords[theme] {
			if strings.Contains(lower, kw) {
				return theme
			}
		}
	}
	return "personal"
}

// themeLayout groups blocks into themed runs separated by a 45-minute gap.
func themeLayout(items []item, obstacles []timeline.Obstacle, st timeline.Settings, rng *rand.Rand) []timeline.Move {
	buckets := make(map[string][]item)
	for _, it := range items {
		theme := themeOf(it.title)
		buckets[theme] = append(buckets[theme], it)
	}

	moves := make([]timeline.Move, 0, len(items))
	cursor := 0.0
	placedAny := false
	for _, theme := range themes {
		group := buckets[theme]
		if len(group) == 0 {
			continue
		}
		shuffleItems(group, rng)
		if placedAny {
			cursor += 0.75
		}
		for _, it := range group {
			m := placeNear(it, cursor, &obstacles, st)
			moves = append(moves, m)
			cursor = m.Start + it.duration
		}
		placedAny = true
	}
	return moves
}
