package routing

import (
	"safe-route-service/internal/domain"
	"safe-route-service/internal/geo"
	"safe-route-service/internal/safety"
)

// Waypoint synthesis: when the provider returns too few usable
// alternatives, candidate detours are constructed by routing through
// intermediate points. Strategies are tried in order until enough
// geometrically distinct, valid candidates exist.

// areaWaypoints returns known-locality centers that sit 15-85% of the
// way along the source->destination line, filtered by extra-distance
// ratio and bearing deviation so the detour stays plausible.
func areaWaypoints(source, destination domain.Point, areas []safety.Area, cfg Config) []domain.Point {
	direct := geo.Distance(source, destination)
	if direct <= 0 {
		return nil
	}
	directBearing := geo.Bearing(source, destination)

	var out []domain.Point
	for _, area := range areas {
		fromSource := geo.Distance(source, area.Center)
		toDest := geo.Distance(area.Center, destination)

		frac := fromSource / direct
		if frac < cfg.WaypointMinFraction || frac > cfg.WaypointMaxFraction {
			continue
		}
		if fromSource+toDest > direct*(1+cfg.WaypointMaxExtraRatio) {
			continue
		}
		if geo.BearingDelta(directBearing, geo.Bearing(source, area.Center)) > cfg.WaypointMaxBearingDelta {
			continue
		}
		out = append(out, area.Center)
	}
	return out
}

// safeZoneWaypoints returns centers of zones scoring at or above the
// safe-zone threshold that are reachable without excessive detour.
func safeZoneWaypoints(source, destination domain.Point, idx *safety.Index, cfg Config) []domain.Point {
	direct := geo.Distance(source, destination)
	if direct <= 0 {
		return nil
	}

	directBearing := geo.Bearing(source, destination)

	var out []domain.Point
	for _, z := range idx.Zones() {
		if z.SafetyScore < cfg.SafeZoneMinScore {
			continue
		}
		center, ok := idx.ZoneCenter(z.AreaName)
		if !ok {
			continue
		}
		fromSource := geo.Distance(source, center)
		toDest := geo.Distance(center, destination)
		if fromSource+toDest > direct*(1+cfg.WaypointMaxExtraRatio) {
			continue
		}
		if geo.BearingDelta(directBearing, geo.Bearing(source, center)) > cfg.WaypointMaxBearingDelta {
			continue
		}
		out = append(out, center)
	}
	return out
}

// offsetWaypoints returns points offset perpendicular to the direct
// line on either side of its midpoint. Last-resort strategy: always
// produces candidates regardless of the zone table.
func offsetWaypoints(source, destination domain.Point, cfg Config) []domain.Point {
	mid := geo.Midpoint(source, destination)
	directBearing := geo.Bearing(source, destination)

	var out []domain.Point
	for _, d := range cfg.OffsetDistancesMeters {
		out = append(out,
			geo.Offset(mid, directBearing+90, d),
			geo.Offset(mid, directBearing-90, d),
		)
	}
	return out
}

// syntheticPath builds a straight fallback polyline source -> waypoint
// -> destination, used when the provider cannot route through an
// offset waypoint. Each leg is interpolated so downstream sampling has
// geometry to work with.
func syntheticPath(source, waypoint, destination domain.Point, pointsPerLeg int) []domain.Point {
	if pointsPerLeg < 2 {
		pointsPerLeg = 2
	}
	out := make([]domain.Point, 0, 2*pointsPerLeg)
	for i := 0; i < pointsPerLeg; i++ {
		out = append(out, geo.Interpolate(source, waypoint, float64(i)/float64(pointsPerLeg)))
	}
	for i := 0; i <= pointsPerLeg; i++ {
		out = append(out, geo.Interpolate(waypoint, destination, float64(i)/float64(pointsPerLeg)))
	}
	return out
}
