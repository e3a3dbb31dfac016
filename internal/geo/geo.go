package geo

import (
	"math"

	"safe-route-service/internal/domain"
)

// Earth radius in meters, shared by all great-circle math.
const earthRadiusMeters = 6371000.0

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// Distance returns the haversine great-circle distance between two
// points in meters. Symmetric; zero when the points coincide.
func Distance(a, b domain.Point) float64 {
	if a.Lat == b.Lat && a.Lng == b.Lng {
		return 0
	}

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dlat := toRadians(b.Lat - a.Lat)
	dlng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Bearing returns the initial bearing from a to b in degrees [0, 360).
func Bearing(a, b domain.Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dlng := toRadians(b.Lng - a.Lng)

	y := math.Sin(dlng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlng)

	deg := toDegrees(math.Atan2(y, x))
	return math.Mod(deg+360, 360)
}

// BearingDelta returns the smallest angular difference between two
// bearings in degrees [0, 180].
func BearingDelta(b1, b2 float64) float64 {
	d := math.Abs(b1 - b2)
	d = math.Mod(d, 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// PointToSegment returns the distance in meters from p to the segment
// [segStart, segEnd], clamping the projection parameter to [0, 1] so
// points beyond either endpoint measure to the nearest endpoint.
//
// Uses a local equirectangular projection centered on the segment,
// which is accurate for the sub-10km segments produced by route
// geometry.
func PointToSegment(p, segStart, segEnd domain.Point) float64 {
	if segStart.Lat == segEnd.Lat && segStart.Lng == segEnd.Lng {
		return Distance(p, segStart)
	}

	midLat := toRadians((segStart.Lat + segEnd.Lat) / 2)
	cosLat := math.Cos(midLat)

	// Project to a flat plane in meters relative to segStart.
	ax, ay := 0.0, 0.0
	bx := toRadians(segEnd.Lng-segStart.Lng) * cosLat * earthRadiusMeters
	by := toRadians(segEnd.Lat-segStart.Lat) * earthRadiusMeters
	px := toRadians(p.Lng-segStart.Lng) * cosLat * earthRadiusMeters
	py := toRadians(p.Lat-segStart.Lat) * earthRadiusMeters

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, segStart)
	}

	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	cx := ax + t*dx
	cy := ay + t*dy

	return math.Hypot(px-cx, py-cy)
}

// DistanceToPolyline returns the minimum distance in meters from p to
// any segment of path. Returns +Inf for an empty path; for a single
// point it degrades to point-to-point distance.
func DistanceToPolyline(p domain.Point, path []domain.Point) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}
	if len(path) == 1 {
		return Distance(p, path[0])
	}

	min := math.Inf(1)
	for i := 0; i < len(path)-1; i++ {
		if d := PointToSegment(p, path[i], path[i+1]); d < min {
			min = d
		}
	}
	return min
}

// Interpolate returns the point a fraction t of the way from a to b.
// Linear interpolation is adequate for the short legs this system
// works with.
func Interpolate(a, b domain.Point, t float64) domain.Point {
	return domain.Point{
		Lat: a.Lat + t*(b.Lat-a.Lat),
		Lng: a.Lng + t*(b.Lng-a.Lng),
	}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b domain.Point) domain.Point { return Interpolate(a, b, 0.5) }

// Offset returns the destination point reached by travelling the given
// distance from p along the given initial bearing.
func Offset(p domain.Point, bearingDeg, meters float64) domain.Point {
	lat1 := toRadians(p.Lat)
	lng1 := toRadians(p.Lng)
	brng := toRadians(bearingDeg)
	ang := meters / earthRadiusMeters

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ang) +
		math.Cos(lat1)*math.Sin(ang)*math.Cos(brng))
	lng2 := lng1 + math.Atan2(
		math.Sin(brng)*math.Sin(ang)*math.Cos(lat1),
		math.Cos(ang)-math.Sin(lat1)*math.Sin(lat2),
	)

	return domain.Point{Lat: toDegrees(lat2), Lng: toDegrees(lng2)}
}

// PathLength returns the total length of path in meters.
func PathLength(path []domain.Point) float64 {
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		total += Distance(path[i], path[i+1])
	}
	return total
}
