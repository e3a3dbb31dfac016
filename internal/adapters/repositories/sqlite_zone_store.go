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

// SQLite-backed implementation of the ZoneStore port.
type SqliteZoneStore struct{ DB *sql.DB }

func NewSqliteZoneStore(db *sql.DB) *SqliteZoneStore {
	return &SqliteZoneStore{DB: db}
}

// Return all safety zones stored in the database.
func (s *SqliteZoneStore) ListZones(ctx context.Context) (_ []domain.SafetyZone, err error) {
	defer obs.Time(ctx, "zones.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite zone store: DB is nil")
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

// RecordReport applies one incident report: the zone's score drops by
// the severity's decay (floored at zero) and its crime count goes up by
// one. Reports against unknown areas create the zone starting from the
// neutral score.
func (s *SqliteZoneStore) RecordReport(ctx context.Context, areaName, street string, severity domain.Severity) (err error) {
	defer obs.Time(ctx, "zones.RecordReport")(&err)

	if s.DB == nil {
		return errors.New("sqlite zone store: DB is nil")
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
	VALUES (?, ?, 1, ?, MAX(0, ? - ?))
	ON CONFLICT (area_name) DO UPDATE
	SET crime_count  = crime_count + 1,
		severity     = excluded.severity,
		street       = CASE WHEN excluded.street != '' THEN excluded.street ELSE street END,
		safety_score = MAX(0, safety_score - ?);
	`

	decay := severity.ScoreDecay()
	_, err = s.DB.ExecContext(ctx, query,
		areaName, street, string(severity), safety.NeutralScore, decay, decay)
	if err != nil {
		return fmt.Errorf("record report area=%q: %w", areaName, err)
	}

	return nil
}
