package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/monitor"
	"safe-route-service/internal/platform/obs"
	"safe-route-service/internal/ports"
	"safe-route-service/internal/safety"
)

var ErrTripNotFound = errors.New("trip not found")

// TripManager owns the live trips: one deviation tracker per started
// trip, keyed by trip id. Trips live in memory only; a restart ends
// them, which matches how the monitoring contract treats the trip as a
// session.
type TripManager struct {
	mu    sync.Mutex
	trips map[string]*monitor.Tracker
}

func NewTripManager() *TripManager {
	return &TripManager{trips: map[string]*monitor.Tracker{}}
}

// StartTrip begins monitoring the chosen route and returns the trip id.
// The zone snapshot taken here stays with the trip, so deviation alerts
// describe the zones as they were when the user set off.
func (m *TripManager) StartTrip(ctx context.Context, store ports.ZoneStore, route []domain.Point, start domain.Point) (_ string, err error) {
	defer obs.Time(ctx, "trips.Start")(&err)

	if len(route) < 2 {
		return "", fmt.Errorf("start trip: %w: route needs at least two points", domain.ErrInvalidInput)
	}
	if !start.Valid() {
		return "", fmt.Errorf("start trip: %w: start coordinates out of range", domain.ErrInvalidInput)
	}

	var idx *safety.Index
	if store != nil {
		zones, err := store.ListZones(ctx)
		if err != nil {
			return "", fmt.Errorf("start trip: list zones: %w", err)
		}
		idx = safety.NewIndex(zones, nil)
	}

	id := uuid.NewString()

	m.mu.Lock()
	m.trips[id] = monitor.NewTracker(route, idx, start)
	m.mu.Unlock()

	return id, nil
}

// UpdatePosition classifies a live position against the trip's route.
func (m *TripManager) UpdatePosition(ctx context.Context, tripID string, p domain.Point) (_ domain.DeviationResult, err error) {
	defer obs.Time(ctx, "trips.UpdatePosition")(&err)

	if !p.Valid() {
		return domain.DeviationResult{}, fmt.Errorf("update position: %w: coordinates out of range", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	tracker, ok := m.trips[tripID]
	m.mu.Unlock()
	if !ok {
		return domain.DeviationResult{}, fmt.Errorf("update position trip=%s: %w", tripID, ErrTripNotFound)
	}

	return tracker.Update(p), nil
}

// EndTrip stops monitoring. Ending an unknown or already-ended trip is
// reported so clients notice double-ends.
func (m *TripManager) EndTrip(ctx context.Context, tripID string) (err error) {
	defer obs.Time(ctx, "trips.End")(&err)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.trips[tripID]; !ok {
		return fmt.Errorf("end trip trip=%s: %w", tripID, ErrTripNotFound)
	}
	delete(m.trips, tripID)
	return nil
}

// ActiveTrips returns how many trips are being monitored.
func (m *TripManager) ActiveTrips() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.trips)
}
