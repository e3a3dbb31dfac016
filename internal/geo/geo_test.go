package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safe-route-service/internal/domain"
)

func TestDistance(t *testing.T) {
	// NAD Junction to Gajuwaka, roughly 7.5km apart.
	nad := domain.Point{Lat: 17.7447, Lng: 83.2425}
	gajuwaka := domain.Point{Lat: 17.6863, Lng: 83.2010}

	d := Distance(nad, gajuwaka)
	assert.InDelta(t, 7900, d, 500, "NAD to Gajuwaka should be roughly 7.9km")

	// Symmetry and identity.
	assert.Equal(t, Distance(nad, gajuwaka), Distance(gajuwaka, nad))
	assert.Equal(t, 0.0, Distance(nad, nad))
}

func TestDistanceTriangleInequality(t *testing.T) {
	a := domain.Point{Lat: 17.70, Lng: 83.30}
	b := domain.Point{Lat: 17.72, Lng: 83.33}
	c := domain.Point{Lat: 17.75, Lng: 83.28}

	// Allow a small slack for floating error.
	assert.LessOrEqual(t, Distance(a, c), Distance(a, b)+Distance(b, c)+1e-6)
}

func TestBearing(t *testing.T) {
	origin := domain.Point{Lat: 17.70, Lng: 83.30}

	north := domain.Point{Lat: 17.80, Lng: 83.30}
	assert.InDelta(t, 0, Bearing(origin, north), 0.5)

	east := domain.Point{Lat: 17.70, Lng: 83.40}
	assert.InDelta(t, 90, Bearing(origin, east), 0.5)

	b := Bearing(origin, domain.Point{Lat: 17.65, Lng: 83.25})
	assert.GreaterOrEqual(t, b, 0.0)
	assert.Less(t, b, 360.0)
}

func TestBearingDelta(t *testing.T) {
	assert.InDelta(t, 20, BearingDelta(10, 350), 1e-9)
	assert.InDelta(t, 180, BearingDelta(0, 180), 1e-9)
	assert.InDelta(t, 0, BearingDelta(45, 45), 1e-9)
}

func TestPointToSegment(t *testing.T) {
	segStart := domain.Point{Lat: 17.70, Lng: 83.30}
	segEnd := domain.Point{Lat: 17.70, Lng: 83.32}

	// Point directly above the segment midpoint; 0.01 deg of latitude
	// is about 1.11km.
	above := domain.Point{Lat: 17.71, Lng: 83.31}
	assert.InDelta(t, 1112, PointToSegment(above, segStart, segEnd), 30)

	// Point beyond the end should clamp to the endpoint distance.
	past := domain.Point{Lat: 17.70, Lng: 83.34}
	assert.InDelta(t, Distance(past, segEnd), PointToSegment(past, segStart, segEnd), 5)

	// Point on the segment is at distance ~0.
	on := domain.Point{Lat: 17.70, Lng: 83.31}
	assert.Less(t, PointToSegment(on, segStart, segEnd), 1.0)
}

func TestDistanceToPolyline(t *testing.T) {
	path := []domain.Point{
		{Lat: 17.70, Lng: 83.30},
		{Lat: 17.71, Lng: 83.31},
		{Lat: 17.72, Lng: 83.33},
	}

	d := DistanceToPolyline(domain.Point{Lat: 17.715, Lng: 83.32}, path)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 2000.0)

	require.True(t, math.IsInf(DistanceToPolyline(domain.Point{}, nil), 1),
		"empty path should yield +Inf")

	single := []domain.Point{{Lat: 17.70, Lng: 83.30}}
	assert.Equal(t,
		Distance(domain.Point{Lat: 17.71, Lng: 83.30}, single[0]),
		DistanceToPolyline(domain.Point{Lat: 17.71, Lng: 83.30}, single))
}

func TestOffset(t *testing.T) {
	origin := domain.Point{Lat: 17.70, Lng: 83.30}

	moved := Offset(origin, 90, 2000)
	assert.InDelta(t, 2000, Distance(origin, moved), 5)
	assert.InDelta(t, 90, Bearing(origin, moved), 1)
}

func TestPathLength(t *testing.T) {
	a := domain.Point{Lat: 17.70, Lng: 83.30}
	b := domain.Point{Lat: 17.71, Lng: 83.31}
	c := domain.Point{Lat: 17.72, Lng: 83.33}

	total := PathLength([]domain.Point{a, b, c})
	assert.InDelta(t, Distance(a, b)+Distance(b, c), total, 1e-9)
	assert.Equal(t, 0.0, PathLength([]domain.Point{a}))
	assert.Equal(t, 0.0, PathLength(nil))
}
