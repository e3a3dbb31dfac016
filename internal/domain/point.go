package domain

import "math"

// Immutable geographic coordinates in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Return coordinates as [lon, lat] for external API compatibility.
func (p Point) CoordsToList() []float64 { return []float64{p.Lng, p.Lat} }

// Valid reports whether the point holds real coordinates within range.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return false
	}
	if math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
