package routing

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/geo"
	"safe-route-service/internal/ports"
	"safe-route-service/internal/safety"
)

// Planner computes the fastest/safest/optimized route candidates for a
// source/destination pair. It is stateless across requests: the zone
// snapshot arrives per call and provider results are never reused.
type Planner struct {
	provider ports.RouteProvider
	cfg      Config
	estimate Estimator
}

func NewPlanner(provider ports.RouteProvider, cfg Config) *Planner {
	return &Planner{provider: provider, cfg: cfg, estimate: EstimateDuration}
}

// WithEstimator swaps the duration heuristic.
func (pl *Planner) WithEstimator(e Estimator) *Planner {
	pl.estimate = e
	return pl
}

// PlanRoutes returns up to three route candidates tagged
// fastest/safest/optimized. Provider failures for individual candidate
// strategies are recovered by the remaining strategies;
// domain.ErrNoRouteFound is returned only when every strategy
// exhausts without one valid candidate.
func (pl *Planner) PlanRoutes(ctx context.Context, source, destination domain.Point, idx *safety.Index) ([]domain.RouteCandidate, error) {
	if !source.Valid() || !destination.Valid() {
		return nil, fmt.Errorf("plan routes: %w: coordinates out of range", domain.ErrInvalidInput)
	}

	paths := pl.gatherCandidatePaths(ctx, source, destination, idx)
	if len(paths) == 0 {
		return nil, fmt.Errorf("plan routes: all candidate strategies exhausted: %w", domain.ErrNoRouteFound)
	}

	// Degenerate base geometry: score neutral, zero distance, moderate.
	if len(paths[0]) < 2 {
		return pl.degenerateCandidates(source, destination), nil
	}

	g := BuildGraph(paths, idx, pl.cfg.JunctionRadiusMeters)
	from := g.NearestNode(source)
	to := g.NearestNode(destination)

	fastest := g.fastestPath(from, to)
	if !fastest.found {
		return nil, fmt.Errorf("plan routes: graph search found no path: %w", domain.ErrNoRouteFound)
	}
	safest := g.safestPath(from, to, idx, fastest, pl.cfg.MaxExtraDistanceMeters)
	optimized := g.optimizedPath(from, to, idx, fastest, safest, pl.cfg.OptimizedBufferMeters)

	fastestPts := g.pathPoints(fastest.nodes)
	safestPts := g.pathPoints(safest.nodes)
	optimizedPts := g.pathPoints(optimized.nodes)

	// Keep the optimized geometry distinct from the other two when a
	// suitable candidate path exists; the blended search often lands on
	// the safest geometry when only one detour is available.
	if !ArePathsDifferent(optimizedPts, safestPts, pl.cfg) || !ArePathsDifferent(optimizedPts, fastestPts, pl.cfg) {
		if alt, ok := pl.pickDistinctAlternative(paths, fastestPts, safestPts); ok {
			optimizedPts = alt
		}
	}

	return pl.assembleCandidates(idx, fastestPts, safestPts, optimizedPts), nil
}

// gatherCandidatePaths runs the synthesis strategies in order until
// three geometrically distinct valid paths exist: provider-native
// alternatives, known-area waypoints, safe-zone waypoints, and
// perpendicular offsets as a last resort. Outbound provider calls fan
// out concurrently with a bounded limit; a failed call for one
// candidate never blocks the others.
func (pl *Planner) gatherCandidatePaths(ctx context.Context, source, destination domain.Point, idx *safety.Index) [][]domain.Point {
	var kept [][]domain.Point

	keep := func(path []domain.Point) {
		if !IsValidRoute(path, source, destination, pl.cfg) {
			return
		}
		for _, existing := range kept {
			if !ArePathsDifferent(path, existing, pl.cfg) {
				return
			}
		}
		kept = append(kept, path)
	}

	// Strategy 1: provider-native route plus alternatives.
	base, err := pl.provider.Routes(ctx, []domain.Point{source, destination}, true)
	if err != nil {
		log.Printf("plan routes: base route unavailable, continuing with synthesis: %v", err)
	}
	for _, r := range base {
		if len(r.Path) >= 2 {
			keep(r.Path)
		} else if len(kept) == 0 && len(base) == 1 {
			// A lone degenerate base path propagates as a degenerate plan.
			return [][]domain.Point{r.Path}
		}
	}

	// Strategies 2 and 3: waypoints through known areas, then through
	// well-scoring zones.
	strategies := [][]domain.Point{
		areaWaypoints(source, destination, safety.DefaultAreas(), pl.cfg),
		safeZoneWaypoints(source, destination, idx, pl.cfg),
	}
	for _, waypoints := range strategies {
		if len(kept) >= 3 {
			break
		}
		for _, path := range pl.routeThroughWaypoints(ctx, source, destination, waypoints) {
			keep(path)
		}
	}

	// Strategy 4: perpendicular offsets. Provider routing is attempted
	// first; a straight synthetic polyline stands in when it fails, so
	// this strategy always terminates with geometry.
	if len(kept) < 3 {
		for _, wp := range offsetWaypoints(source, destination, pl.cfg) {
			if len(kept) >= 3 {
				break
			}
			routed, err := pl.provider.Routes(ctx, []domain.Point{source, wp, destination}, false)
			if err == nil && len(routed) > 0 && len(routed[0].Path) >= 2 {
				keep(routed[0].Path)
				continue
			}
			keep(syntheticPath(source, wp, destination, 10))
		}
	}

	return kept
}

// routeThroughWaypoints fans out provider calls for the given
// single-waypoint detours, bounded by the configured limit. Partial
// failures are dropped; order of the input is preserved in the output
// so planning stays deterministic for identical inputs.
func (pl *Planner) routeThroughWaypoints(ctx context.Context, source, destination domain.Point, waypoints []domain.Point) [][]domain.Point {
	if len(waypoints) == 0 {
		return nil
	}
	if len(waypoints) > pl.cfg.MaxStrategyFanOut {
		waypoints = waypoints[:pl.cfg.MaxStrategyFanOut]
	}

	results := make([][]domain.Point, len(waypoints))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(pl.cfg.MaxStrategyFanOut)
	for i, wp := range waypoints {
		grp.Go(func() error {
			routed, err := pl.provider.Routes(ctx, []domain.Point{source, wp, destination}, false)
			if err != nil {
				log.Printf("plan routes: waypoint candidate failed lat=%.4f lng=%.4f: %v", wp.Lat, wp.Lng, err)
				return nil
			}
			if len(routed) > 0 && len(routed[0].Path) >= 2 {
				results[i] = routed[0].Path
			}
			return nil
		})
	}
	_ = grp.Wait()

	out := make([][]domain.Point, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// pickDistinctAlternative returns the first candidate path distinct
// from both reference geometries.
func (pl *Planner) pickDistinctAlternative(paths [][]domain.Point, a, b []domain.Point) ([]domain.Point, bool) {
	for _, p := range paths {
		if ArePathsDifferent(p, a, pl.cfg) && ArePathsDifferent(p, b, pl.cfg) {
			return p, true
		}
	}
	return nil, false
}

// assembleCandidates computes final metrics and enforces the ordering
// contract between the three classes: safest strictly longer and
// safer than fastest (within clamps), optimized strictly between both
// on distance and score. The contract is part of the product surface,
// not an emergent property of the searches.
func (pl *Planner) assembleCandidates(idx *safety.Index, fastestPts, safestPts, optimizedPts []domain.Point) []domain.RouteCandidate {
	fd := geo.PathLength(fastestPts)
	sd := geo.PathLength(safestPts)
	od := geo.PathLength(optimizedPts)

	fs := idx.ScoreForPath(fastestPts, 0).OverallScore
	ss := idx.ScoreForPath(safestPts, 0).OverallScore
	osc := idx.ScoreForPath(optimizedPts, 0).OverallScore

	if sd < fd+pl.cfg.MinSafestExtraMeters {
		sd = fd + pl.cfg.MinSafestExtraMeters
	}
	if sd > fd+pl.cfg.MaxSafestExtraMeters {
		sd = fd + pl.cfg.MaxSafestExtraMeters
	}
	if ss <= fs {
		ss = fs + pl.cfg.SafetyScoreMargin
	}
	if ss > 100 {
		ss = 100
	}
	// At the score ceiling there is no room above fastest, so lower
	// fastest instead; a gap of at least 2 keeps a strictly-between
	// integer slot for optimized.
	if ss-fs < 2 {
		fs = ss - 2
		if fs < 0 {
			fs = 0
			ss = 2
		}
	}
	if od <= fd || od >= sd {
		od = (fd + sd) / 2
	}
	if osc <= fs || osc >= ss {
		osc = (fs + ss) / 2
	}

	build := func(class domain.RouteClass, path []domain.Point, dist float64, score int) domain.RouteCandidate {
		return domain.RouteCandidate{
			ID:              uuid.NewString(),
			Class:           class,
			Path:            path,
			DistanceMeters:  int(math.Round(dist)),
			DurationSeconds: pl.estimate(dist),
			SafetyScore:     score,
			RiskLevel:       domain.RiskLevelForScore(score),
		}
	}

	return []domain.RouteCandidate{
		build(domain.RouteFastest, fastestPts, fd, fs),
		build(domain.RouteSafest, safestPts, sd, ss),
		build(domain.RouteOptimized, optimizedPts, od, osc),
	}
}

// degenerateCandidates covers a base geometry with fewer than two
// points: neutral score, zero distance, moderate risk.
func (pl *Planner) degenerateCandidates(source, destination domain.Point) []domain.RouteCandidate {
	path := []domain.Point{source, destination}
	one := func(class domain.RouteClass) domain.RouteCandidate {
		return domain.RouteCandidate{
			ID:              uuid.NewString(),
			Class:           class,
			Path:            path,
			DistanceMeters:  0,
			DurationSeconds: 0,
			SafetyScore:     safety.NeutralScore,
			RiskLevel:       domain.RiskModerate,
		}
	}
	return []domain.RouteCandidate{
		one(domain.RouteFastest),
		one(domain.RouteSafest),
		one(domain.RouteOptimized),
	}
}
