package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"safe-route-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createZonesQuery := `
	CREATE TABLE IF NOT EXISTS safety_zones (
		area_name TEXT PRIMARY KEY,
		street TEXT NOT NULL DEFAULT '',
		crime_count INTEGER NOT NULL DEFAULT 0,
		severity TEXT NOT NULL DEFAULT 'low',
		safety_score INTEGER NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query TEXT PRIMARY KEY,
        lon REAL NOT NULL,
        lat REAL NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_safety_zones_score
    ON safety_zones(safety_score);
	`

	statements := []string{
		createZonesQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with safety zone data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed zones: read %q: %w", jsonPath, err)
	}

	var data []domain.SafetyZone
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed zones: parse json: %w", err)
	}

	rows := make([]domain.SafetyZone, 0, len(data))
	for i, z := range data {
		z.AreaName = strings.TrimSpace(z.AreaName)
		if z.AreaName == "" {
			return fmt.Errorf("seed zones: item at index %d: area name cannot be empty", i+1)
		}
		if z.SafetyScore < 0 || z.SafetyScore > 100 {
			return fmt.Errorf("seed zones: area %q: score %d out of range", z.AreaName, z.SafetyScore)
		}
		if z.Severity == "" {
			z.Severity = domain.SeverityLow
		}
		if !z.Severity.Valid() {
			return fmt.Errorf("seed zones: area %q: unknown severity %q", z.AreaName, z.Severity)
		}
		rows = append(rows, z)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed zones: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO safety_zones (
		area_name,
		street,
		crime_count,
		severity,
		safety_score
	)
	VALUES (?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed zones: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, z := range rows {
		if _, err := stmt.Exec(z.AreaName, z.Street, z.CrimeCount, string(z.Severity), z.SafetyScore); err != nil {
			return fmt.Errorf("seed zones: insert area=%q: %w", z.AreaName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed zones: commit tx: %w", err)
	}

	return nil
}
