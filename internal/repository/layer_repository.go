package repository

import (
	"database/sql"
	"fmt"

	"github.com/broadstreet/cholera-dashboard-go/internal/models"
)

// LayerRepository handles database operations for the layer warm cache
type LayerRepository struct {
	db *sql.DB
}

// NewLayerRepository creates a new layer repository
func NewLayerRepository(db *sql.DB) *LayerRepository {
	return &LayerRepository{db: db}
}

// Get retrieves a cached dataset by signature.
// Returns (nil, nil) on a cache miss.
func (r *LayerRepository) Get(signature string) (*models.Dataset, error) {
	var found string
	err := r.db.QueryRow("SELECT signature FROM datasets WHERE signature = ?", signature).Scan(&found)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset cache: %w", err)
	}

	ds := &models.Dataset{}

	rows, err := r.db.Query(
		"SELECT lat, lng, count, has_count FROM death_records WHERE signature = ? ORDER BY seq",
		signature,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached death records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.DeathRecord
		if err := rows.Scan(&rec.Lat, &rec.Lng, &rec.Count, &rec.HasCount); err != nil {
			return nil, fmt.Errorf("failed to scan cached death record: %w", err)
		}
		ds.Deaths = append(ds.Deaths, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cached death records: %w", err)
	}

	pumpRows, err := r.db.Query(
		"SELECT lat, lng FROM pump_records WHERE signature = ? ORDER BY seq",
		signature,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached pump records: %w", err)
	}
	defer pumpRows.Close()

	for pumpRows.Next() {
		var rec models.PumpRecord
		if err := pumpRows.Scan(&rec.Lat, &rec.Lng); err != nil {
			return nil, fmt.Errorf("failed to scan cached pump record: %w", err)
		}
		ds.Pumps = append(ds.Pumps, rec)
	}
	if err := pumpRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cached pump records: %w", err)
	}

	return ds, nil
}

// Put stores a parsed dataset under its signature, replacing any previous
// cache generation
func (r *LayerRepository) Put(signature string, ds *models.Dataset) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	// Drop older generations; the cache keeps one dataset at a time
	for _, stmt := range []string{
		"DELETE FROM death_records",
		"DELETE FROM pump_records",
		"DELETE FROM datasets",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}

	if _, err := tx.Exec("INSERT INTO datasets (signature) VALUES (?)", signature); err != nil {
		return fmt.Errorf("failed to insert dataset entry: %w", err)
	}

	for i, rec := range ds.Deaths {
		_, err := tx.Exec(
			"INSERT INTO death_records (signature, seq, lat, lng, count, has_count) VALUES (?, ?, ?, ?, ?, ?)",
			signature, i, rec.Lat, rec.Lng, rec.Count, rec.HasCount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert cached death record: %w", err)
		}
	}

	for i, rec := range ds.Pumps {
		_, err := tx.Exec(
			"INSERT INTO pump_records (signature, seq, lat, lng) VALUES (?, ?, ?, ?)",
			signature, i, rec.Lat, rec.Lng,
		)
		if err != nil {
			return fmt.Errorf("failed to insert cached pump record: %w", err)
		}
	}

	return tx.Commit()
}
