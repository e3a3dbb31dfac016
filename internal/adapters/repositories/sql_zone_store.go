package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/platform/obs"
	"safe-route-service/internal/safety"
)

// Postgres-backed implementation of the ZoneStore port.
type SQLZoneStore struct{ DB *sql.DB }

func NewSQLZoneStore(db *sql.DB) *SQLZoneStore {
	return &SQLZoneStore{DB: db}
}

// Return all safety zones stored in the database.
func (s *SQLZoneStore) ListZones(ctx context.Context) (_ []domain.SafetyZone, err error) {
	defer obs.Time(ctx, "zones.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql zone store: DB is nil")
	}

	query := `
	SELECT
		area_name,
		street,
		crime_count,
		severity,
		safety_score
	FROM safety_zones
	ORDER BY area_name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list zones: query safety_zones table: %w", err)
	}
	defer rows.Close()

	zones := make([]domain.SafetyZone, 0, 64)
	for rows.Next() {
		var z domain.SafetyZone
		var severity string
		err := rows.Scan(&z.AreaName, &z.Street, &z.CrimeCount, &severity, &z.SafetyScore)
		if err != nil {
			return nil, fmt.Errorf("list zones: scan row: %w", err)
		}
		z.Severity = domain.Severity(severity)
		zones = append(zones, z)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list zones: row iteration: %w", err)
	}

	return zones, nil
}

// RecordReport applies one incident report; see SqliteZoneStore for the
// decay semantics.
func (s *SQLZoneStore) RecordReport(ctx context.Context, areaName, street string, severity domain.Severity) (err error) {
	defer obs.Time(ctx, "zones.RecordReport")(&err)

	if s.DB == nil {
		return errors.New("sql zone store: DB is nil")
	}

	areaName = strings.TrimSpace(areaName)
	if areaName == "" {
		return fmt.Errorf("record report: %w: area name is empty", domain.ErrInvalidInput)
	}
	if !severity.Valid() {
		return fmt.Errorf("record report: %w: unknown severity %q", domain.ErrInvalidInput, severity)
	}

	query := `
	INSERT INTO safety_zones (
		area_name,
		street,
		crime_count,
		severity,
		safety_score
	)
	VALUES ($1, $2, 1, $3, GREATEST(0, $4 - $5))
	ON CONFLICT (area_name) DO UPDATE
	SET crime_count  = safety_zones.crime_count + 1,
		severity     = EXCLUDED.severity,
		street       = CASE WHEN EXCLUDED.street <> '' THEN EXCLUDED.street ELSE safety_zones.street END,
		safety_score = GREATEST(0, safety_zones.safety_score - $5);
	`

	_, err = s.DB.ExecContext(ctx, query,
		areaName, street, string(severity), safety.NeutralScore, severity.ScoreDecay())
	if err != nil {
		return fmt.Errorf("record report area=%q: %w", areaName, err)
	}

	return nil
}
