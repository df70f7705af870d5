package ui

import (
	"strings"
	"testing"

	"rondo/internal/block"
	"rondo/internal/timeline"
)

func testTimeline(t *testing.T) *timeline.Timeline {
	t.Helper()
	tl := timeline.New(timeline.DefaultSettings())
	for _, spec := range []struct {
		title    string
		start    float64
		duration float64
	}{
		{"Deep work", 9, 2},
		{"Lunch", 12, 1},
		{"Review", 16, 0.5},
	} {
		if _, err := tl.AddBlock(spec.title, spec.start, spec.duration, block.Color{}); err != nil {
			t.Fatalf("adding %q: %v", spec.title, err)
		}
	}
	return tl
}

func TestResolveBlock_ByPosition(t *testing.T) {
	tl := testTimeline(t)

	b, err := resolveBlock(tl, "1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if b.Title != "Deep work" {
		t.Errorf("position 1 = %q, want first block by start", b.Title)
	}

	if _, err := resolveBlock(tl, "4"); err == nil {
		t.Error("expected error for out-of-range position")
	}
	if _, err := resolveBlock(tl, "0"); err == nil {
		t.Error("expected error for position 0")
	}
}

func TestResolveBlock_ByIDPrefix(t *testing.T) {
	tl := testTimeline(t)
	want := tl.Blocks()[1]

	got, err := resolveBlock(tl, want.ID[:8])
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("resolved %q, want %q", got.ID, want.ID)
	}

	if _, err := resolveBlock(tl, "zzz"); err == nil {
		t.Error("expected error for unknown prefix")
	}
}

func TestComputeStats(t *testing.T) {
	tl := testTimeline(t)
	if err := tl.LockBlock(tl.Blocks()[0].ID); err != nil {
		t.Fatalf("lock: %v", err)
	}

	s := ComputeStats(tl)
	if s.BlockCount != 3 || s.LockedCount != 1 {
		t.Errorf("counts = %d/%d, want 3/1", s.BlockCount, s.LockedCount)
	}
	if s.ScheduledHours != 3.5 {
		t.Errorf("scheduled = %v, want 3.5", s.ScheduledHours)
	}
	if s.FreeHours != 20.5 {
		t.Errorf("free = %v, want 20.5", s.FreeHours)
	}
	// Gaps: 0-9, 11-12, 13-16, 16.5-24. Largest is the 9h morning one.
	if s.GapCount != 4 {
		t.Errorf("gaps = %d, want 4", s.GapCount)
	}
	if s.LargestGap != 9 {
		t.Errorf("largest gap = %v, want 9", s.LargestGap)
	}
}

func TestRenderSchedule(t *testing.T) {
	tl := testTimeline(t)
	if err := tl.LockBlock(tl.Blocks()[1].ID); err != nil {
		t.Fatalf("lock: %v", err)
	}

	out := RenderSchedule(tl)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Deep work") {
		t.Errorf("first line should be the earliest block: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "*") {
		t.Errorf("locked block should be starred: %q", lines[1])
	}
}

func TestOccupancyBar(t *testing.T) {
	if got := OccupancyBar(12, 10); !strings.Contains(got, "50%") {
		t.Errorf("12h of 24h should read 50%%: %q", got)
	}
	if got := OccupancyBar(30, 10); !strings.Contains(got, "100%") {
		t.Errorf("oversubscribed day caps at 100%%: %q", got)
	}
}

func TestDescribeSettings(t *testing.T) {
	if got := describeSettings(false, false); got != "strict" {
		t.Errorf("got %q, want strict", got)
	}
	if got := describeSettings(true, true); got != "wrap on, overlap on" {
		t.Errorf("got %q", got)
	}
}
