package database

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the warm-cache tables. The cache holds one parsed
// dataset per signature; rows are immutable once written.
func CreateSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS datasets (
			signature TEXT PRIMARY KEY,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS death_records (
			signature TEXT NOT NULL,
			seq INTEGER NOT NULL,
			lat REAL NOT NULL,
			lng REAL NOT NULL,
			count INTEGER NOT NULL DEFAULT 1,
			has_count INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (signature, seq)
		)`,
		`CREATE TABLE IF NOT EXISTS pump_records (
			signature TEXT NOT NULL,
			seq INTEGER NOT NULL,
			lat REAL NOT NULL,
			lng REAL NOT NULL,
			PRIMARY KEY (signature, seq)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
