package timeline

import "testing"

func TestHasConflict(t *testing.T) {
	st := Settings{}

	obstacles := []Obstacle{
		{ID: "a", Start: 0, Duration: 2},
		{ID: "b", Start: 5, Duration: 1},
	}

	tests := []struct {
		name      string
		candidate Obstacle
		exclude   string
		want      bool
	}{
		{"inside first obstacle", Obstacle{ID: "x", Start: 1, Duration: 1}, "", true},
		{"between obstacles", Obstacle{ID: "x", Start: 2, Duration: 3}, "", false},
		{"touching end is free", Obstacle{ID: "x", Start: 6, Duration: 1}, "", false},
		{"own id skipped", Obstacle{ID: "a", Start: 0.5, Duration: 1}, "", false},
		{"excluded id skipped", Obstacle{ID: "x", Start: 5, Duration: 0.5}, "b", false},
		{"exclusion does not skip others", Obstacle{ID: "x", Start: 1, Duration: 1}, "b", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := HasConflict(tc.candidate, obstacles, tc.exclude, st)
			if got != tc.want {
				t.Errorf("HasConflict = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasConflict_AllowOverlapShortCircuits(t *testing.T) {
	st := Settings{AllowOverlap: true}
	obstacles := []Obstacle{{ID: "a", Start: 0, Duration: 24}}

	if HasConflict(Obstacle{ID: "x", Start: 5, Duration: 2}, obstacles, "", st) {
		t.Error("allowOverlap must suppress every conflict")
	}
}

func TestHasConflict_EmptyObstacles(t *testing.T) {
	if HasConflict(Obstacle{Start: 5, Duration: 2}, nil, "", Settings{}) {
		t.Error("no obstacles means no conflict")
	}
}

func TestHasConflict_WrappedTail(t *testing.T) {
	// Block 23:00–01:00 occupies [23, 24) and [0, 1); a candidate at 00:30
	// falls inside the wrapped tail.
	st := Settings{WrapEnabled: true}
	obstacles := []Obstacle{{ID: "late", Start: 23, Duration: 2}}

	if !HasConflict(Obstacle{ID: "x", Start: 0.5, Duration: 0.5}, obstacles, "", st) {
		t.Error("candidate inside wrapped tail must conflict")
	}
	if HasConflict(Obstacle{ID: "x", Start: 1.5, Duration: 0.5}, obstacles, "", st) {
		t.Error("candidate after wrapped tail must not conflict")
	}
}

func TestHasConflict_WrapDisabledClampsObstacle(t *testing.T) {
	// Without wrapping the 23:00 block is clamped at midnight, freeing the
	// early morning.
	st := Settings{WrapEnabled: false}
	obstacles := []Obstacle{{ID: "late", Start: 23, Duration: 2}}

	if HasConflict(Obstacle{ID: "x", Start: 0.5, Duration: 0.5}, obstacles, "", st) {
		t.Error("clamped obstacle must not occupy the next morning")
	}
}

func TestHasConflict_LockedAndUnlockedAlike(t *testing.T) {
	// Lock state is not part of the obstacle view; a locked block occupies
	// time exactly like an unlocked one.
	obstacles := []Obstacle{{ID: "locked", Start: 9, Duration: 2}}
	if !HasConflict(Obstacle{ID: "x", Start: 10, Duration: 1}, obstacles, "", Settings{}) {
		t.Error("obstacle from a locked block must still conflict")
	}
}
