package services

import (
	"context"
	"fmt"
	"strings"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/platform/obs"
	"safe-route-service/internal/ports"
	"safe-route-service/internal/routing"
	"safe-route-service/internal/safety"
)

type PlanTripRequest struct {
	// Coordinates take precedence; names are geocoded when a side's
	// coordinates are absent.
	Source          domain.Point
	Destination     domain.Point
	SourceName      string
	DestinationName string
}

// One presented route choice: the candidate plus the safety context the
// UI renders alongside it.
type RouteOption struct {
	Route          domain.RouteCandidate                      `json:"route"`
	DangerousAreas []string                                   `json:"dangerous_areas,omitempty"`
	SafeAreas      []string                                   `json:"safe_areas,omitempty"`
	CrimeZones     []domain.CrimeZoneHit                      `json:"crime_zones,omitempty"`
	CrimesByType   map[domain.CrimeType][]domain.CrimeZoneHit `json:"crimes_by_type,omitempty"`
}

// PlanTrip computes the fastest/safest/optimized options for one
// request over a fresh zone snapshot. The snapshot is taken once so all
// three options are judged against the same data.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	store ports.ZoneStore,
	planner *routing.Planner,
	geocoder ports.Geocoder,
) (_ []RouteOption, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	source, err := resolveEndpoint(ctx, req.Source, req.SourceName, geocoder)
	if err != nil {
		return nil, fmt.Errorf("plan trip: resolve source: %w", err)
	}
	destination, err := resolveEndpoint(ctx, req.Destination, req.DestinationName, geocoder)
	if err != nil {
		return nil, fmt.Errorf("plan trip: resolve destination: %w", err)
	}

	zones, err := store.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan trip: list zones: %w", err)
	}
	idx := safety.NewIndex(zones, nil)

	candidates, err := planner.PlanRoutes(ctx, source, destination, idx)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	opts := make([]RouteOption, 0, len(candidates))
	for _, c := range candidates {
		score := idx.ScoreForPath(c.Path, 0)
		hits := idx.CrimeZonesAlongRoute(c.Path, safety.DefaultCrimeScanOptions())

		opt := RouteOption{
			Route:          c,
			DangerousAreas: score.DangerousAreas,
			SafeAreas:      score.SafeAreas,
			CrimeZones:     hits,
		}
		if len(hits) > 0 {
			opt.CrimesByType = safety.GroupByType(hits)
		}
		opts = append(opts, opt)
	}

	return opts, nil
}

// resolveEndpoint prefers explicit coordinates and falls back to
// geocoding the name. The top geocoding hit wins.
func resolveEndpoint(ctx context.Context, p domain.Point, name string, geocoder ports.Geocoder) (domain.Point, error) {
	if p.Valid() && (p.Lat != 0 || p.Lng != 0) {
		return p, nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Point{}, fmt.Errorf("%w: neither coordinates nor a place name given", domain.ErrInvalidInput)
	}
	if geocoder == nil {
		return domain.Point{}, fmt.Errorf("%w: place name given but geocoding is not configured", domain.ErrInvalidInput)
	}

	results, err := geocoder.Search(ctx, name)
	if err != nil {
		return domain.Point{}, fmt.Errorf("geocode %q: %w", name, err)
	}
	if len(results) == 0 {
		return domain.Point{}, fmt.Errorf("%w: no geocoding match for %q", domain.ErrInvalidInput, name)
	}
	return results[0].Location, nil
}
