package integration

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"rondo/internal/block"
	"rondo/internal/db"
	"rondo/internal/shuffle"
	"rondo/internal/timeline"
)

// openStore creates a fresh snapshot store for each test with automatic
// cleanup.
func openStore(t *testing.T, path string) *db.SQLite {
	t.Helper()
	store, err := db.New(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// newSession wires a timeline to a store the way main does: every
// mutation persists a snapshot through the OnChange observer.
func newSession(t *testing.T, store *db.SQLite) *timeline.Timeline {
	t.Helper()
	ctx := context.Background()

	snap, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}

	var tl *timeline.Timeline
	if snap == nil {
		tl = timeline.New(timeline.DefaultSettings())
	} else {
		tl, err = timeline.FromSnapshot(*snap)
		if err != nil {
			t.Fatalf("failed to restore snapshot: %v", err)
		}
	}

	tl.OnChange(func(s timeline.Snapshot) {
		if err := store.SaveSnapshot(ctx, s); err != nil {
			t.Errorf("saving snapshot: %v", err)
		}
	})
	return tl
}

func TestMutationsPersistAcrossSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rondo.db")

	// Session 1: build a day.
	store := openStore(t, dbPath)
	tl := newSession(t, store)

	meeting, err := tl.AddBlock("Team meeting", 9, 1, block.ParseColor("#ff006e"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := tl.LockBlock(meeting.ID); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if _, err := tl.AddBlock("Deep work", 10.5, 2, block.Color{}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := tl.PlaceBlock("Email", 0.5, block.Color{}); err != nil {
		t.Fatalf("place: %v", err)
	}
	tl.SetWrapEnabled(true)

	// Session 2: everything survives the restart.
	store2 := openStore(t, dbPath)
	tl2 := newSession(t, store2)

	if tl2.Len() != 3 {
		t.Fatalf("restored %d blocks, want 3", tl2.Len())
	}
	if !tl2.Settings().WrapEnabled {
		t.Error("wrap setting lost across sessions")
	}

	restored, err := tl2.Get(meeting.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !restored.Locked {
		t.Error("lock flag lost across sessions")
	}
	if restored.Start != 9 || restored.Duration != 1 {
		t.Errorf("meeting restored at %v+%v", restored.Start, restored.Duration)
	}
	if restored.Color.Hex() != "#ff006e" {
		t.Errorf("color restored as %s", restored.Color.Hex())
	}
}

func TestRejectedOperationLeavesStoreUntouched(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rondo.db")
	store := openStore(t, dbPath)
	tl := newSession(t, store)

	if _, err := tl.AddBlock("Existing", 9, 2, block.Color{}); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err := tl.AddBlock("Clash", 10, 1, block.Color{})
	if !errors.Is(err, block.ErrTimeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// Restart: only the first block was ever persisted.
	tl2 := newSession(t, openStore(t, dbPath))
	if tl2.Len() != 1 {
		t.Errorf("store has %d blocks, want 1", tl2.Len())
	}
}

func TestShuffleThenReload(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rondo.db")
	store := openStore(t, dbPath)
	tl := newSession(t, store)

	locked, err := tl.AddBlock("Fixed meeting", 13, 1, block.Color{})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := tl.LockBlock(locked.ID); err != nil {
		t.Fatalf("lock: %v", err)
	}
	for _, spec := range []struct {
		title    string
		start    float64
		duration float64
	}{
		{"Write report", 0, 2},
		{"Gym", 5, 1.5},
		{"Read", 17, 1},
	} {
		if _, err := tl.AddBlock(spec.title, spec.start, spec.duration, block.Color{}); err != nil {
			t.Fatalf("adding %q: %v", spec.title, err)
		}
	}

	res, err := shuffle.Apply(tl, shuffle.Compact, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("shuffle: %v", err)
	}
	if res.Moved != 3 {
		t.Errorf("moved %d, want 3", res.Moved)
	}

	want := make(map[string]float64)
	for _, b := range tl.Blocks() {
		want[b.ID] = b.Start
	}

	// The shuffled layout is what a restart sees.
	tl2 := newSession(t, openStore(t, dbPath))
	for _, b := range tl2.Blocks() {
		if b.Start != want[b.ID] {
			t.Errorf("%q restored at %v, want %v", b.Title, b.Start, want[b.ID])
		}
	}

	fixed, err := tl2.Get(locked.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fixed.Start != 13 {
		t.Errorf("locked block at %v after shuffle+reload, want 13", fixed.Start)
	}
}

func TestFullWorkflow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rondo.db")
	store := openStore(t, dbPath)
	tl := newSession(t, store)

	// 1. Build the day.
	work, err := tl.AddBlock("Deep work", 9, 2, block.Color{})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	email, err := tl.PlaceBlock("Email catchup", 0.5, block.Color{})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	// 2. Edit: grow the work block, then duplicate the email slot.
	d := 2.5
	if err := tl.UpdateBlock(work.ID, timeline.Patch{Duration: &d}); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if _, err := tl.DuplicateBlock(email.ID); err != nil {
		t.Fatalf("duplicate: %v", err)
	}

	// 3. Lock the work block and shuffle around it.
	if err := tl.LockBlock(work.ID); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if _, err := shuffle.Apply(tl, shuffle.Spread, rand.New(rand.NewSource(7))); err != nil {
		t.Fatalf("shuffle: %v", err)
	}

	// 4. Remove one copy.
	if err := tl.RemoveBlock(email.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// 5. The final state survives a restart.
	tl2 := newSession(t, openStore(t, dbPath))
	if tl2.Len() != 2 {
		t.Fatalf("restored %d blocks, want 2", tl2.Len())
	}
	got, err := tl2.Get(work.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Start != 9 || got.Duration != 2.5 || !got.Locked {
		t.Errorf("work block restored as %v+%v locked=%v", got.Start, got.Duration, got.Locked)
	}
}
