package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS blocks (
			id       TEXT PRIMARY KEY,
			title    TEXT NOT NULL,
			start    REAL NOT NULL,
			duration REAL NOT NULL,
			color    TEXT NOT NULL DEFAULT '',
			locked   INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS settings (
			id            INTEGER PRIMARY KEY CHECK(id = 1),
			wrap_enabled  INTEGER NOT NULL DEFAULT 0,
			allow_overlap INTEGER NOT NULL DEFAULT 0,
			time_format   TEXT NOT NULL DEFAULT '24h' CHECK(time_format IN ('12h', '24h')),
			updated_at    DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_blocks_start ON blocks(start);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
