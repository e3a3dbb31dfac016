package services

import (
	"context"
	"errors"
	"testing"

	"safe-route-service/internal/adapters/directions"
	"safe-route-service/internal/domain"
	"safe-route-service/internal/geo"
	"safe-route-service/internal/ports"
	"safe-route-service/internal/routing"
)

type stubZoneStore struct {
	zones   []domain.SafetyZone
	reports []string
	listErr error
}

func (s *stubZoneStore) ListZones(ctx context.Context) ([]domain.SafetyZone, error) {
	return s.zones, s.listErr
}

func (s *stubZoneStore) RecordReport(ctx context.Context, areaName, street string, severity domain.Severity) error {
	s.reports = append(s.reports, areaName)
	return nil
}

type stubGeocoder struct {
	byName map[string]domain.Point
	calls  int
}

func (g *stubGeocoder) Search(ctx context.Context, query string) ([]ports.GeocodeResult, error) {
	g.calls++
	p, ok := g.byName[query]
	if !ok {
		return nil, errors.New("no matches")
	}
	return []ports.GeocodeResult{{DisplayName: query, Location: p}}, nil
}

func (g *stubGeocoder) Reverse(ctx context.Context, p domain.Point) (string, error) {
	return "", errors.New("not implemented")
}

func testPlanner() *routing.Planner {
	provider := &directions.MockRouteProvider{
		RoutesFn: func(ctx context.Context, waypoints []domain.Point, alternatives bool) ([]ports.RouteResult, error) {
			if len(waypoints) != 2 {
				return nil, errors.New("no road through waypoint")
			}
			path := make([]domain.Point, 0, 20)
			for i := 0; i < 20; i++ {
				path = append(path, geo.Interpolate(waypoints[0], waypoints[1], float64(i)/19))
			}
			return []ports.RouteResult{{
				DistanceMeters:  int(geo.PathLength(path)),
				DurationSeconds: 600,
				Path:            path,
			}}, nil
		},
	}

	cfg := routing.DefaultConfig()
	cfg.OffsetDistancesMeters = []float64{2000}
	return routing.NewPlanner(provider, cfg)
}

func TestPlanTripReturnsThreeOptionsWithSafetyContext(t *testing.T) {
	source := domain.Point{Lat: 17.7000, Lng: 83.3000}
	destination := domain.Point{Lat: 17.7200, Lng: 83.3300}

	store := &stubZoneStore{zones: []domain.SafetyZone{
		// Siripuram resolves through the built-in area table and sits
		// near the direct corridor.
		{AreaName: "Siripuram", CrimeCount: 7, Severity: domain.SeverityHigh, SafetyScore: 30},
	}}

	opts, err := PlanTrip(context.Background(), PlanTripRequest{Source: source, Destination: destination}, store, testPlanner(), nil)
	if err != nil {
		t.Fatalf("PlanTrip failed: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("len(opts) = %d, want 3", len(opts))
	}

	wantClasses := []domain.RouteClass{domain.RouteFastest, domain.RouteSafest, domain.RouteOptimized}
	for i, opt := range opts {
		if opt.Route.Class != wantClasses[i] {
			t.Errorf("opts[%d].Class = %s, want %s", i, opt.Route.Class, wantClasses[i])
		}
		if len(opt.Route.Path) < 2 {
			t.Errorf("opts[%d] has a degenerate path", i)
		}
	}
}

func TestPlanTripGeocodesPlaceNames(t *testing.T) {
	source := domain.Point{Lat: 17.7000, Lng: 83.3000}
	destination := domain.Point{Lat: 17.7200, Lng: 83.3300}

	geocoder := &stubGeocoder{byName: map[string]domain.Point{
		"railway station": source,
		"beach road":      destination,
	}}

	opts, err := PlanTrip(context.Background(), PlanTripRequest{
		SourceName:      "railway station",
		DestinationName: "beach road",
	}, &stubZoneStore{}, testPlanner(), geocoder)
	if err != nil {
		t.Fatalf("PlanTrip failed: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("len(opts) = %d, want 3", len(opts))
	}
	if geocoder.calls != 2 {
		t.Errorf("geocoder called %d times, want 2", geocoder.calls)
	}
}

func TestPlanTripRejectsUnresolvableEndpoints(t *testing.T) {
	_, err := PlanTrip(context.Background(), PlanTripRequest{}, &stubZoneStore{}, testPlanner(), nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	_, err = PlanTrip(context.Background(), PlanTripRequest{
		SourceName:      "nowhere",
		DestinationName: "also nowhere",
	}, &stubZoneStore{}, testPlanner(), &stubGeocoder{})
	if err == nil {
		t.Fatal("PlanTrip should fail when geocoding finds nothing")
	}
}

func TestPlanTripSurfacesStoreFailure(t *testing.T) {
	store := &stubZoneStore{listErr: errors.New("db unreachable")}
	_, err := PlanTrip(context.Background(), PlanTripRequest{
		Source:      domain.Point{Lat: 17.7000, Lng: 83.3000},
		Destination: domain.Point{Lat: 17.7200, Lng: 83.3300},
	}, store, testPlanner(), nil)
	if err == nil {
		t.Fatal("PlanTrip should surface a zone store failure")
	}
}
