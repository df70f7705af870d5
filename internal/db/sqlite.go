// Package db provides SQLite persistence for timeline snapshots.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"rondo/internal/block"
	"rondo/internal/timeline"
)

// SQLite stores timeline snapshots in a SQLite database. Saves replace the
// whole snapshot, so the last writer wins.
type SQLite struct {
	db *sql.DB
}

// New opens (creating if necessary) the database at path and runs migrations.
func New(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveSnapshot replaces the stored snapshot with snap in a single
// transaction.
func (s *SQLite) SaveSnapshot(ctx context.Context, snap timeline.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM blocks`); err != nil {
		return fmt.Errorf("clearing blocks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO blocks (id, title, start, duration, color, locked)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, b := range snap.Blocks {
		_, err := stmt.ExecContext(ctx,
			b.ID,
			b.Title,
			b.Start,
			b.Duration,
			b.Color.Hex(),
			b.Locked,
		)
		if err != nil {
			return fmt.Errorf("inserting block %q: %w", b.Title, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO settings (id, wrap_enabled, allow_overlap, time_format, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			wrap_enabled  = excluded.wrap_enabled,
			allow_overlap = excluded.allow_overlap,
			time_format   = excluded.time_format,
			updated_at    = excluded.updated_at
	`, snap.WrapEnabled, snap.AllowOverlap, snap.TimeFormat)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// LoadSnapshot returns the stored snapshot, or nil if nothing has been
// saved yet.
func (s *SQLite) LoadSnapshot(ctx context.Context) (*timeline.Snapshot, error) {
	var snap timeline.Snapshot

	err := s.db.QueryRowContext(ctx, `
		SELECT wrap_enabled, allow_overlap, time_format
		FROM settings
		WHERE id = 1
	`).Scan(&snap.WrapEnabled, &snap.AllowOverlap, &snap.TimeFormat)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying settings: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, start, duration, color, locked
		FROM blocks
		ORDER BY start, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			b   block.Block
			hex string
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.Start, &b.Duration, &hex, &b.Locked); err != nil {
			return nil, fmt.Errorf("scanning block: %w", err)
		}
		b.Color = block.ParseColor(hex)
		snap.Blocks = append(snap.Blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocks: %w", err)
	}

	return &snap, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
