package directions

import (
	"context"
	"errors"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/ports"
)

// MockRouteProvider implements ports.RouteProvider with a caller-set
// function. Intended for tests.
type MockRouteProvider struct {
	RoutesFn func(ctx context.Context, waypoints []domain.Point, alternatives bool) ([]ports.RouteResult, error)
}

func (m *MockRouteProvider) Routes(ctx context.Context, waypoints []domain.Point, alternatives bool) ([]ports.RouteResult, error) {
	if m.RoutesFn == nil {
		return nil, errors.New("mock route provider: RoutesFn not set")
	}
	return m.RoutesFn(ctx, waypoints, alternatives)
}
