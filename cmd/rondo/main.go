package main

import (
	"context"
	"fmt"
	"os"

	"rondo/internal/config"
	"rondo/internal/db"
	"rondo/internal/timeline"
	"rondo/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.UI.NoColor {
		ui.DisableColor()
	}

	store, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = store.Close() }()

	tl, err := restoreTimeline(store, cfg)
	if err != nil {
		return err
	}

	// Persist after every mutation. A failed save must not crash an
	// interactive session, so it only warns.
	tl.OnChange(func(s timeline.Snapshot) {
		if err := store.SaveSnapshot(context.Background(), s); err != nil {
			fmt.Fprintf(os.Stderr, "warning: saving schedule: %v\n", err)
		}
	})

	return ui.NewApp(tl, cfg).Execute()
}

// restoreTimeline loads the persisted snapshot, falling back to an empty
// timeline with the configured defaults on first run.
func restoreTimeline(store *db.SQLite, cfg *config.Config) (*timeline.Timeline, error) {
	snap, err := store.LoadSnapshot(context.Background())
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	if snap == nil {
		return timeline.New(timeline.Settings{
			WrapEnabled:  cfg.Schedule.WrapEnabled,
			AllowOverlap: cfg.Schedule.AllowOverlap,
			TimeFormat:   cfg.Schedule.TimeFormat,
		}), nil
	}

	tl, err := timeline.FromSnapshot(*snap)
	if err != nil {
		return nil, fmt.Errorf("restoring schedule: %w", err)
	}
	return tl, nil
}
