package timeline

import "rondo/internal/clock"

// Obstacle is the minimal view of a placed block that a conflict check or
// placement search needs. Locked and unlocked blocks look identical here;
// lock state only controls who may be moved, not who occupies time.
type Obstacle struct {
	ID       string
	Start    float64
	Duration float64
}

// HasConflict reports whether the candidate span collides with any of the
// obstacles under the given settings. The candidate's own ID and excludeID
// are skipped, so a block being moved is never tested against its old
// position. The first collision short-circuits.
func HasConflict(candidate Obstacle, obstacles []Obstacle, excludeID string, st Settings) bool {
	if st.AllowOverlap || len(obstacles) == 0 {
		return false
	}

	candSpans := clock.Spans(candidate.Start, candidate.Duration, st.WrapEnabled)

	for _, o := range obstacles {
		if o.ID != "" && (o.ID == candidate.ID || o.ID == excludeID) {
			continue
		}
		for _, os := range clock.Spans(o.Start, o.Duration, st.WrapEnabled) {
			for _, cs := range candSpans {
				if clock.RangesOverlap(cs.Start, cs.End, os.Start, os.End, st.WrapEnabled) {
					return true
				}
			}
		}
	}
	return false
}
