package safety

import (
	"strings"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/geo"
)

const (
	// NeutralScore is assumed when no named zone matches a location.
	NeutralScore = 70

	// MatchRadiusMeters bounds how far a zone's resolved center may be
	// from a point and still apply to it.
	MatchRadiusMeters = 2000.0
)

// Immutable snapshot of the safety-zone table plus the locality lookup
// used to resolve zone names to coordinates. Build one per planning
// request; concurrent requests each hold their own snapshot, so no
// locking is needed.
type Index struct {
	zones []domain.SafetyZone
	areas []Area
}

// NewIndex builds a snapshot over the given zones and locality table.
// Passing nil areas falls back to the built-in region table.
func NewIndex(zones []domain.SafetyZone, areas []Area) *Index {
	if areas == nil {
		areas = DefaultAreas()
	}
	return &Index{zones: zones, areas: areas}
}

// Zones returns the snapshot's zone list in load order.
func (idx *Index) Zones() []domain.SafetyZone { return idx.zones }

// matchesArea is the single place the fuzzy name rule lives:
// case-insensitive equality, or containment in either direction. The
// rule is a known source-data compromise; callers depend on its exact
// semantics, including first-match-wins when two names contain each
// other.
func matchesArea(zoneName, areaName string) bool {
	z := strings.ToLower(strings.TrimSpace(zoneName))
	a := strings.ToLower(strings.TrimSpace(areaName))
	if z == "" || a == "" {
		return false
	}
	return z == a || strings.Contains(z, a) || strings.Contains(a, z)
}

// resolveCenter maps a zone name to its locality center. First match
// in area-table order wins.
func (idx *Index) resolveCenter(zoneName string) (domain.Point, bool) {
	for _, area := range idx.areas {
		if matchesArea(zoneName, area.Name) {
			return area.Center, true
		}
	}
	return domain.Point{}, false
}

// ZoneCenter resolves a zone's area name to its locality center.
func (idx *Index) ZoneCenter(areaName string) (domain.Point, bool) {
	return idx.resolveCenter(areaName)
}

// ScoreForPoint returns the safety score of the nearest matching zone
// whose resolved center lies within MatchRadiusMeters of p, or
// NeutralScore when nothing matches. Equal distances keep the earlier
// zone in list order.
func (idx *Index) ScoreForPoint(p domain.Point) int {
	score := NeutralScore
	best := MatchRadiusMeters

	for _, z := range idx.zones {
		center, ok := idx.resolveCenter(z.AreaName)
		if !ok {
			continue
		}
		d := geo.Distance(p, center)
		if d < best {
			best = d
			score = clampScore(z.SafetyScore)
		}
	}
	return score
}

// NearestZone returns the closest resolvable zone within maxMeters of
// p along with its distance. ok is false when no zone qualifies.
func (idx *Index) NearestZone(p domain.Point, maxMeters float64) (zone domain.SafetyZone, distance float64, ok bool) {
	best := maxMeters
	for _, z := range idx.zones {
		center, found := idx.resolveCenter(z.AreaName)
		if !found {
			continue
		}
		d := geo.Distance(p, center)
		if d < best {
			best = d
			zone = z
			ok = true
		}
	}
	return zone, best, ok
}

// Aggregate result of scoring a whole path.
type PathScore struct {
	OverallScore   int
	RiskLevel      domain.RiskLevel
	DangerousAreas []string
	SafeAreas      []string
}

// ScoreForPath samples the path at the given stride (every Nth point;
// stride <= 0 selects max(1, len/50)) and averages per-sample scores
// for the overall figure. Areas averaging below 50 are reported as
// dangerous, at or above 75 as safe.
func (idx *Index) ScoreForPath(path []domain.Point, stride int) PathScore {
	if len(path) == 0 {
		return PathScore{OverallScore: NeutralScore, RiskLevel: domain.RiskLevelForScore(NeutralScore)}
	}
	if stride <= 0 {
		stride = len(path) / 50
		if stride < 1 {
			stride = 1
		}
	}

	var (
		sampleSum   int
		sampleCount int
		areaSums    = map[string]int{}
		areaCounts  = map[string]int{}
		areaOrder   []string
	)

	for i := 0; i < len(path); i += stride {
		p := path[i]
		score := idx.ScoreForPoint(p)
		sampleSum += score
		sampleCount++

		if zone, _, ok := idx.NearestZone(p, MatchRadiusMeters); ok {
			if _, seen := areaSums[zone.AreaName]; !seen {
				areaOrder = append(areaOrder, zone.AreaName)
			}
			areaSums[zone.AreaName] += clampScore(zone.SafetyScore)
			areaCounts[zone.AreaName]++
		}
	}

	overall := NeutralScore
	if sampleCount > 0 {
		overall = sampleSum / sampleCount
	}

	out := PathScore{
		OverallScore: overall,
		RiskLevel:    domain.RiskLevelForScore(overall),
	}
	for _, name := range areaOrder {
		avg := areaSums[name] / areaCounts[name]
		switch {
		case avg < 50:
			out.DangerousAreas = append(out.DangerousAreas, name)
		case avg >= 75:
			out.SafeAreas = append(out.SafeAreas, name)
		}
	}
	return out
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
