package ports

import (
	"context"

	"safe-route-service/internal/domain"
)

// A single geocoding match.
type GeocodeResult struct {
	DisplayName string
	Location    domain.Point
}

// Contract for the external geocoding provider.
type Geocoder interface {
	// Search resolves a free-text query to candidate locations.
	Search(ctx context.Context, query string) ([]GeocodeResult, error)

	// Reverse resolves coordinates to a display name.
	Reverse(ctx context.Context, p domain.Point) (string, error)
}

// Cache boundary for geocoding results, keyed by normalized query.
type GeocodeCache interface {
	GetMany(ctx context.Context, queries []string) (map[string]domain.Point, error)
	PutMany(ctx context.Context, results map[string]domain.Point) error
}
