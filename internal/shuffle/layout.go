package shuffle

import (
	"math/rand"
	"sort"

	"rondo/internal/clock"
	"rondo/internal/timeline"
)

// placeNear places one item as close to preferred as the day allows and
// records it as a new obstacle for the items that follow. The move is
// marked forced when even the full quarter-hour scan found nothing free.
func placeNear(it item, preferred float64, obstacles *[]timeline.Obstacle, st timeline.Settings) timeline.Move {
	pos := timeline.FindValidPosition(preferred, it.duration, *obstacles, st)
	return commit(it, pos, obstacles, st)
}

// placeTight places one item at the start of the smallest sufficient gap.
func placeTight(it item, obstacles *[]timeline.Obstacle, st timeline.Settings) timeline.Move {
	pos := timeline.FindBestGap(it.duration, *obstacles, st)
	return commit(it, pos, obstacles, st)
}

func commit(it item, pos float64, obstacles *[]timeline.Obstacle, st timeline.Settings) timeline.Move {
	forced := !st.AllowOverlap && timeline.HasConflict(
		timeline.Obstacle{ID: it.id, Start: pos, Duration: it.duration},
		*obstacles, "", st)
	*obstacles = append(*obstacles, timeline.Obstacle{ID: it.id, Start: pos, Duration: it.duration})
	return timeline.Move{ID: it.id, Start: pos, Forced: forced}
}

func shuffleItems(items []item, rng *rand.Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// randomLayout shuffles the order and walks the day forward, occasionally
// inserting a short breathing gap before a block.
func randomLayout(items []item, obstacles []timeline.Obstacle, st timeline.Settings, rng *rand.Rand) []timeline.Move {
	shuffleItems(items, rng)

	moves := make([]timeline.Move, 0, len(items))
	cursor := 0.0
	for _, it := range items {
		if rng.Float64() < 0.3 {
			cursor += clock.QuarterRound(rng.Float64() * 1.5)
		}
		m := placeNear(it, cursor, &obstacles, st)
		moves = append(moves, m)
		cursor = m.Start + it.duration
	}
	return moves
}

// compactLayout packs largest-first into the tightest gaps. Placing big
// blocks before small ones keeps fragmentation down.
func compactLayout(items []item, obstacles []timeline.Obstacle, st timeline.Settings) []timeline.Move {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].duration > items[j].duration
	})

	moves := make([]timeline.Move, 0, len(items))
	for _, it := range items {
		moves = append(moves, placeTight(it, &obstacles, st))
	}
	return moves
}

// spreadLayout distributes the free time of the day evenly between blocks.
func spreadLayout(items []item, obstacles []timeline.Obstacle, st timeline.Settings, rng *rand.Rand) []timeline.Move {
	var total, lockedTotal float64
	for _, it := range items {
		total += it.duration
	}
	for _, o := range obstacles {
		lockedTotal += o.Duration
	}

	gap := (clock.HoursPerDay - lockedTotal - total) / float64(len(items))
	if gap < 0 {
		gap = 0
	}
	if gap > 2 {
		gap = 2
	}

	shuffleItems(items, rng)

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

// clusteredLayout groups blocks by duration into short (≤30m), medium
// (≤90m) and long buckets, keeps each bucket together and separates the
// buckets with a half-hour gap.
func clusteredLayout(items []item, obstacles []timeline.Obstacle, st timeline.Settings, rng *rand.Rand) []timeline.Move {
	var short, medium, long []item
	for _, it := range items {
		switch {
		case it.duration <= 0.5:
			short = append(short, it)
		case it.duration <= 1.5:
			medium = append(medium, it)
		default:
			long = append(long, it)
		}
	}
	shuffleItems(short, rng)
	shuffleItems(medium, rng)
	shuffleItems(long, rng)

	groups := [][]item{short, medium, long}
	if rng.Intn(2) == 1 {
		groups = [][]item{long, medium, short}
	}

	moves := make([]timeline.Move, 0, len(items))
	cursor := 0.0
	placedAny := false
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		if placedAny {
			cursor += 0.5
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
