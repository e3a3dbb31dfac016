package domain

import "errors"

var (
	// ErrNoRouteFound is returned when every waypoint strategy has been
	// exhausted without producing a single valid route candidate.
	ErrNoRouteFound = errors.New("no route found")

	// ErrInvalidInput is returned for missing or out-of-range coordinates,
	// rejected before any search begins.
	ErrInvalidInput = errors.New("invalid input")
)
