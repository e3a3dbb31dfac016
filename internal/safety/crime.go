package safety

import (
	"sort"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/geo"
)

// Static area -> crime category table. Unmapped areas default to theft.
var crimeTypeByArea = []struct {
	Area string
	Type domain.CrimeType
}{
	{"Old Town", domain.CrimeRobbery},
	{"One Town", domain.CrimeRobbery},
	{"Port Area", domain.CrimeAssault},
	{"Fishing Harbour", domain.CrimeAssault},
	{"Gajuwaka", domain.CrimeRobbery},
	{"Kurmannapalem", domain.CrimeKidnap},
	{"Duvvada", domain.CrimeKidnap},
	{"Auto Nagar", domain.CrimeTheft},
	{"Sheela Nagar", domain.CrimeHarassment},
	{"NAD Junction", domain.CrimeAccident},
	{"Birla Junction", domain.CrimeAccident},
	{"Gopalapatnam", domain.CrimeHarassment},
	{"Pendurthi", domain.CrimeMurder},
	{"Kancharapalem", domain.CrimeAssault},
	{"Poorna Market", domain.CrimeTheft},
	{"Kurupam Market", domain.CrimeTheft},
	{"Jagadamba Junction", domain.CrimeHarassment},
	{"Beach Road", domain.CrimeHarassment},
	{"Madhurawada", domain.CrimeRobbery},
	{"Anakapalle", domain.CrimeMurder},
	{"Arilova", domain.CrimeAssault},
	{"Simhachalam", domain.CrimeAccident},
}

// CrimeTypeForArea resolves an area name to its crime category using
// the same fuzzy rule as zone resolution, defaulting to theft.
func CrimeTypeForArea(name string) domain.CrimeType {
	for _, entry := range crimeTypeByArea {
		if matchesArea(name, entry.Area) {
			return entry.Type
		}
	}
	return domain.CrimeTheft
}

// Tuning for the along-route crime-zone scan.
type CrimeScanOptions struct {
	// Zones farther than this from every sampled path point are ignored.
	MaxDistanceMeters float64
	// Zones at or above this safety score are excluded from the report.
	ScoreThreshold int
}

// DefaultCrimeScanOptions returns the thresholds used by the planning
// endpoint.
func DefaultCrimeScanOptions() CrimeScanOptions {
	return CrimeScanOptions{MaxDistanceMeters: 1200, ScoreThreshold: 70}
}

// CrimeZonesAlongRoute reports the zones that intersect the route
// within the detection radius. Each area appears at most once, keeping
// its closest sample distance. Output is sorted by ascending safety
// score, ties broken by ascending distance.
func (idx *Index) CrimeZonesAlongRoute(path []domain.Point, opts CrimeScanOptions) []domain.CrimeZoneHit {
	if len(path) == 0 {
		return nil
	}
	if opts.MaxDistanceMeters <= 0 {
		opts.MaxDistanceMeters = DefaultCrimeScanOptions().MaxDistanceMeters
	}
	if opts.ScoreThreshold <= 0 {
		opts.ScoreThreshold = DefaultCrimeScanOptions().ScoreThreshold
	}

	stride := len(path) / 60
	if stride < 1 {
		stride = 1
	}

	type candidate struct {
		zone domain.SafetyZone
		dist float64
	}
	closest := map[string]candidate{}
	var order []string

	for i := 0; i < len(path); i += stride {
		sample := path[i]
		for _, z := range idx.zones {
			if z.SafetyScore >= opts.ScoreThreshold || z.CrimeCount == 0 {
				continue
			}
			center, ok := idx.resolveCenter(z.AreaName)
			if !ok {
				continue
			}
			d := geo.Distance(sample, center)
			if d > opts.MaxDistanceMeters {
				continue
			}
			prev, seen := closest[z.AreaName]
			if !seen {
				order = append(order, z.AreaName)
				closest[z.AreaName] = candidate{zone: z, dist: d}
			} else if d < prev.dist {
				closest[z.AreaName] = candidate{zone: z, dist: d}
			}
		}
	}

	hits := make([]domain.CrimeZoneHit, 0, len(order))
	for _, name := range order {
		c := closest[name]
		hits = append(hits, domain.CrimeZoneHit{
			AreaName:       c.zone.AreaName,
			Street:         c.zone.Street,
			CrimeType:      CrimeTypeForArea(c.zone.AreaName),
			CrimeCount:     c.zone.CrimeCount,
			Severity:       c.zone.Severity,
			SafetyScore:    c.zone.SafetyScore,
			DistanceMeters: c.dist,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].SafetyScore != hits[j].SafetyScore {
			return hits[i].SafetyScore < hits[j].SafetyScore
		}
		return hits[i].DistanceMeters < hits[j].DistanceMeters
	})
	return hits
}

// GroupByType buckets hits over the fixed crime-type enum. Types with
// no hits are present with empty slices so the UI can render all
// categories.
func GroupByType(hits []domain.CrimeZoneHit) map[domain.CrimeType][]domain.CrimeZoneHit {
	out := make(map[domain.CrimeType][]domain.CrimeZoneHit, 7)
	for _, t := range domain.AllCrimeTypes() {
		out[t] = []domain.CrimeZoneHit{}
	}
	for _, h := range hits {
		out[h.CrimeType] = append(out[h.CrimeType], h)
	}
	return out
}
