package db

import (
	"database/sql"
	"fmt"
)

// Base schema - PWAs carry import-time string IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS pwas (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  display_name TEXT NOT NULL,
  description TEXT,
  absolute_start_url TEXT NOT NULL,
  manifest_url TEXT NOT NULL UNIQUE,
  icon_url_128 TEXT,
  lighthouse_score REAL NOT NULL DEFAULT 0,
  web_page_test TEXT,
  page_speed TEXT,
  created TEXT NOT NULL,
  updated TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pwas_created ON pwas(created);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: index for score-ordered listings
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_pwas_lighthouse_score ON pwas(lighthouse_score)`); err != nil {
		return fmt.Errorf("create idx_pwas_lighthouse_score: %w", err)
	}

	// Migration 2: add web_page_test column for databases created before
	// the metric blobs were stored
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('pwas') WHERE name = 'web_page_test'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check web_page_test column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE pwas ADD COLUMN web_page_test TEXT`); err != nil {
			return fmt.Errorf("add web_page_test column: %w", err)
		}
	}

	return nil
}
