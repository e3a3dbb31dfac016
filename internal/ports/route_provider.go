package ports

import (
	"context"

	"safe-route-service/internal/domain"
)

// One route geometry returned by the external routing provider.
type RouteResult struct {
	DistanceMeters  int
	DurationSeconds int
	Path            []domain.Point
}

// Contract for the external routing provider. Implementations must be
// safe for concurrent use: the planner fans out several calls at once.
type RouteProvider interface {
	// Routes computes one or more routes through the given waypoints in
	// order. When alternatives is true the provider may return extra
	// candidates after the primary route.
	Routes(ctx context.Context, waypoints []domain.Point, alternatives bool) ([]RouteResult, error)
}
