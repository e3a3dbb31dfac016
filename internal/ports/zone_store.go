package ports

import (
	"context"

	"safe-route-service/internal/domain"
)

// Port: boundary for reading and reporting safety zones.
//
// ListZones feeds the per-request safety index snapshot; RecordReport
// is the only write path and applies a severity-weighted score decay
// plus a crime-count increment.
type ZoneStore interface {
	ListZones(ctx context.Context) ([]domain.SafetyZone, error)
	RecordReport(ctx context.Context, areaName, street string, severity domain.Severity) error
}
