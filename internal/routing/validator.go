package routing

import (
	"safe-route-service/internal/domain"
	"safe-route-service/internal/geo"
)

// IsValidRoute rejects degenerate candidate paths: wrong endpoints,
// repeated sharp turns, and looping/backtracking geometry. Synthesized
// candidates fail these checks routinely; rejection is logged by the
// caller and never surfaced.
func IsValidRoute(path []domain.Point, source, destination domain.Point, cfg Config) bool {
	if len(path) < 2 {
		return false
	}
	if geo.Distance(path[0], source) > cfg.EndpointToleranceMeters {
		return false
	}
	if geo.Distance(path[len(path)-1], destination) > cfg.EndpointToleranceMeters {
		return false
	}

	samples := samplePath(path, 20)
	directBearing := geo.Bearing(source, destination)

	sharpTurns := 0
	backtracks := 0
	prevBearing := -1.0
	prevToDest := geo.Distance(samples[0], destination)

	for i := 0; i < len(samples)-1; i++ {
		segBearing := geo.Bearing(samples[i], samples[i+1])
		if prevBearing >= 0 && geo.BearingDelta(prevBearing, segBearing) > cfg.SharpTurnDegrees {
			sharpTurns++
			if sharpTurns > cfg.MaxSharpTurns {
				return false
			}
		}
		prevBearing = segBearing

		// Moving away from the destination while headed off the direct
		// line counts as backtracking (anti U-turn heuristic).
		toDest := geo.Distance(samples[i+1], destination)
		if toDest > prevToDest+cfg.BacktrackMeters &&
			geo.BearingDelta(segBearing, directBearing) > cfg.BacktrackBearingDegrees {
			backtracks++
			if backtracks > cfg.MaxBacktracks {
				return false
			}
		}
		if toDest < prevToDest {
			prevToDest = toDest
		}
	}

	return true
}

// ArePathsDifferent samples interior points of p1 and counts how many
// have no point of p2 nearby. Paths are "different" when enough
// samples are far from the other path; this keeps the three presented
// routes from being near-duplicates.
func ArePathsDifferent(p1, p2 []domain.Point, cfg Config) bool {
	if len(p1) < 2 || len(p2) < 2 {
		return false
	}

	samples := interiorSamples(p1, cfg.DistinctSamples)
	far := 0
	for _, s := range samples {
		if geo.DistanceToPolyline(s, p2) > cfg.DistinctFarMeter {
			far++
			if far >= cfg.DistinctMinFar {
				return true
			}
		}
	}
	return false
}

// samplePath reduces a path to at most n evenly spaced points,
// always keeping both endpoints.
func samplePath(path []domain.Point, n int) []domain.Point {
	if len(path) <= n || n < 2 {
		return path
	}
	out := make([]domain.Point, 0, n)
	step := float64(len(path)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		out = append(out, path[int(float64(i)*step)])
	}
	out[len(out)-1] = path[len(path)-1]
	return out
}

// interiorSamples picks n points strictly between the endpoints.
func interiorSamples(path []domain.Point, n int) []domain.Point {
	if len(path) <= 2 {
		return nil
	}
	inner := path[1 : len(path)-1]
	if len(inner) <= n {
		return inner
	}
	out := make([]domain.Point, 0, n)
	step := float64(len(inner)) / float64(n)
	for i := 0; i < n; i++ {
		out = append(out, inner[int(float64(i)*step)])
	}
	return out
}
