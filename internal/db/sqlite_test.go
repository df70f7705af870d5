package db

import (
	"context"
	"path/filepath"
	"testing"

	"rondo/internal/block"
	"rondo/internal/timeline"
)

func testStore(t *testing.T) *SQLite {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "rondo.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadSnapshot_EmptyDatabase(t *testing.T) {
	store := testStore(t)

	snap, err := store.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot from fresh database, got %+v", snap)
	}
}

func TestSaveLoadSnapshot(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	a, err := block.New("Morning focus", 9, 1.5, block.ParseColor("#ff006e"))
	if err != nil {
		t.Fatalf("new block: %v", err)
	}
	a.Locked = true
	b, err := block.New("Lunch", 12.5, 0.75, block.Color{})
	if err != nil {
		t.Fatalf("new block: %v", err)
	}

	saved := timeline.Snapshot{
		Blocks:      []block.Block{*a, *b},
		WrapEnabled: true,
		TimeFormat:  "12h",
	}
	if err := store.SaveSnapshot(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected snapshot, got nil")
	}

	if !loaded.WrapEnabled || loaded.AllowOverlap || loaded.TimeFormat != "12h" {
		t.Errorf("settings mismatch: %+v", loaded)
	}
	if len(loaded.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(loaded.Blocks))
	}

	// Ordered by start, so the 9:00 block comes first.
	got := loaded.Blocks[0]
	if got.ID != a.ID || got.Title != "Morning focus" || got.Start != 9 || got.Duration != 1.5 {
		t.Errorf("block mismatch: %+v", got)
	}
	if !got.Locked {
		t.Error("locked flag not persisted")
	}
	if got.Color.Hex() != "#ff006e" {
		t.Errorf("color = %s, want #ff006e", got.Color.Hex())
	}
}

func TestSaveSnapshot_LastWriteWins(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	first, err := block.New("First", 8, 1, block.Color{})
	if err != nil {
		t.Fatalf("new block: %v", err)
	}
	if err := store.SaveSnapshot(ctx, timeline.Snapshot{
		Blocks:     []block.Block{*first},
		TimeFormat: "24h",
	}); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second, err := block.New("Second", 10, 2, block.Color{})
	if err != nil {
		t.Fatalf("new block: %v", err)
	}
	if err := store.SaveSnapshot(ctx, timeline.Snapshot{
		Blocks:     []block.Block{*second},
		TimeFormat: "24h",
	}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Blocks) != 1 || loaded.Blocks[0].Title != "Second" {
		t.Errorf("expected only the second snapshot's blocks, got %+v", loaded.Blocks)
	}
}

func TestSaveSnapshot_RoundTripsThroughTimeline(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	tl := timeline.New(timeline.DefaultSettings())
	if _, err := tl.AddBlock("Deep work", 6, 2, block.Color{}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := tl.AddBlock("Review", 14, 1, block.Color{}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := store.SaveSnapshot(ctx, tl.Snapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	restored, err := timeline.FromSnapshot(*loaded)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Len() != 2 {
		t.Errorf("restored %d blocks, want 2", restored.Len())
	}
}
