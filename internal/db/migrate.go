package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is re-run on
// each open, so all of them must be idempotent (IF NOT EXISTS).
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id         TEXT PRIMARY KEY,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		memo       TEXT NOT NULL DEFAULT '',
		category   TEXT NOT NULL DEFAULT 'life',
		priority   TEXT NOT NULL DEFAULT 'not_important_not_urgent',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_start ON activities(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_category ON activities(category)`,
}
