package routing

import (
	"testing"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/geo"
)

func TestIsValidRouteAcceptsStraightPath(t *testing.T) {
	cfg := DefaultConfig()
	source := domain.Point{Lat: 17.7000, Lng: 83.3000}
	destination := domain.Point{Lat: 17.7200, Lng: 83.3300}

	if !IsValidRoute(straightTestPath(source, destination, 19), source, destination, cfg) {
		t.Error("straight path between the endpoints should be valid")
	}
}

func TestIsValidRouteAcceptsOffsetDetour(t *testing.T) {
	cfg := DefaultConfig()
	source := domain.Point{Lat: 17.7000, Lng: 83.3000}
	destination := domain.Point{Lat: 17.7200, Lng: 83.3300}
	waypoint := geo.Offset(geo.Midpoint(source, destination), geo.Bearing(source, destination)+90, 2000)

	if !IsValidRoute(syntheticPath(source, waypoint, destination, 10), source, destination, cfg) {
		t.Error("perpendicular offset detour should be valid")
	}
}

func TestIsValidRouteRejectsWrongEndpoints(t *testing.T) {
	cfg := DefaultConfig()
	source := domain.Point{Lat: 17.7000, Lng: 83.3000}
	destination := domain.Point{Lat: 17.7200, Lng: 83.3300}
	path := straightTestPath(source, destination, 19)

	farSource := geo.Offset(source, 0, 500)
	if IsValidRoute(path, farSource, destination, cfg) {
		t.Error("path starting 500m from the source should be invalid")
	}

	farDest := geo.Offset(destination, 0, 500)
	if IsValidRoute(path, source, farDest, cfg) {
		t.Error("path ending 500m from the destination should be invalid")
	}

	if IsValidRoute([]domain.Point{source}, source, destination, cfg) {
		t.Error("single-point path should be invalid")
	}
}

func TestIsValidRouteRejectsRepeatedSharpTurns(t *testing.T) {
	cfg := DefaultConfig()
	source := domain.Point{Lat: 17.7000, Lng: 83.3000}
	destination := geo.Offset(source, 90, 1500)

	// East, back west, east again: two bearing reversals.
	path := []domain.Point{
		source,
		geo.Offset(source, 90, 1000),
		geo.Offset(source, 90, 600),
		geo.Offset(source, 90, 1100),
		destination,
	}
	if IsValidRoute(path, source, destination, cfg) {
		t.Error("path with two bearing reversals should be invalid")
	}
}

func TestIsValidRouteRejectsOscillatingPath(t *testing.T) {
	cfg := DefaultConfig()
	// Relax the sharp-turn limit so the backtracking rule is what
	// rejects the path.
	cfg.SharpTurnDegrees = 200
	cfg.MaxSharpTurns = 100

	source := domain.Point{Lat: 17.7000, Lng: 83.3000}
	destination := geo.Offset(source, 90, 3500)

	east := func(m float64) domain.Point { return geo.Offset(source, 90, m) }
	path := []domain.Point{
		source,
		east(1200), east(700),
		east(1900), east(1400),
		east(2600), east(2100),
		east(3300), east(2800),
		destination,
	}
	if IsValidRoute(path, source, destination, cfg) {
		t.Error("path regressing toward the source four times should be invalid")
	}
}

func TestArePathsDifferent(t *testing.T) {
	cfg := DefaultConfig()
	source := domain.Point{Lat: 17.7000, Lng: 83.3000}
	destination := domain.Point{Lat: 17.7200, Lng: 83.3300}

	direct := straightTestPath(source, destination, 19)
	waypoint := geo.Offset(geo.Midpoint(source, destination), geo.Bearing(source, destination)+90, 2000)
	detour := syntheticPath(source, waypoint, destination, 10)

	if ArePathsDifferent(direct, direct, cfg) {
		t.Error("a path must not be different from itself")
	}
	if !ArePathsDifferent(direct, detour, cfg) {
		t.Error("direct path and 2km offset detour should be different")
	}
	if !ArePathsDifferent(detour, direct, cfg) {
		t.Error("distinctness should hold with the arguments swapped")
	}
	if ArePathsDifferent(direct, []domain.Point{source}, cfg) {
		t.Error("degenerate second path should never count as different")
	}
}

func TestSamplePathKeepsEndpoints(t *testing.T) {
	source := domain.Point{Lat: 17.7000, Lng: 83.3000}
	destination := domain.Point{Lat: 17.7200, Lng: 83.3300}
	path := straightTestPath(source, destination, 99)

	samples := samplePath(path, 20)
	if len(samples) != 20 {
		t.Fatalf("len(samples) = %d, want 20", len(samples))
	}
	if samples[0] != path[0] || samples[len(samples)-1] != path[len(path)-1] {
		t.Error("sampling must keep both endpoints")
	}

	short := straightTestPath(source, destination, 5)
	if got := samplePath(short, 20); len(got) != len(short) {
		t.Errorf("short path should be returned unsampled, got %d points", len(got))
	}
}
