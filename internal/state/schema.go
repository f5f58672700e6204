package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			side TEXT NOT NULL DEFAULT 'top',
			drag_dismiss INTEGER NOT NULL DEFAULT 1,
			sound_volume REAL NOT NULL DEFAULT 0.8
		);

		CREATE TABLE IF NOT EXISTS toast_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT,
			side TEXT NOT NULL,
			presented_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_history_presented_at ON toast_history(presented_at DESC);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add sound_volume column if missing
	_, _ = db.Exec(`ALTER TABLE settings ADD COLUMN sound_volume REAL NOT NULL DEFAULT 0.8`)

	return nil
}
