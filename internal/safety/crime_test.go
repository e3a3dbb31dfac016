package safety

import (
	"testing"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/geo"
)

func TestCrimeTypeForArea(t *testing.T) {
	if got := CrimeTypeForArea("Gajuwaka"); got != domain.CrimeRobbery {
		t.Fatalf("Gajuwaka = %q, want robbery", got)
	}
	if got := CrimeTypeForArea("NAD Junction"); got != domain.CrimeAccident {
		t.Fatalf("NAD Junction = %q, want accident", got)
	}
	// Unmapped areas default to theft.
	if got := CrimeTypeForArea("Totally Unknown Colony"); got != domain.CrimeTheft {
		t.Fatalf("unmapped area = %q, want theft", got)
	}
}

func TestCrimeZonesAlongRoute(t *testing.T) {
	areas := []Area{
		{Name: "Near", Center: domain.Point{Lat: 17.7050, Lng: 83.3010}},
		{Name: "Far", Center: domain.Point{Lat: 17.7500, Lng: 83.3500}},
		{Name: "Clean", Center: domain.Point{Lat: 17.7060, Lng: 83.3020}},
	}
	zones := []domain.SafetyZone{
		{AreaName: "Near", CrimeCount: 8, Severity: domain.SeverityHigh, SafetyScore: 40},
		{AreaName: "Far", CrimeCount: 9, Severity: domain.SeverityHigh, SafetyScore: 20},
		{AreaName: "Clean", CrimeCount: 0, Severity: domain.SeverityLow, SafetyScore: 45},
	}
	idx := NewIndex(zones, areas)

	path := []domain.Point{
		{Lat: 17.7000, Lng: 83.3000},
		{Lat: 17.7040, Lng: 83.3008},
		{Lat: 17.7080, Lng: 83.3016},
		{Lat: 17.7120, Lng: 83.3024},
	}

	opts := CrimeScanOptions{MaxDistanceMeters: 1000, ScoreThreshold: 70}
	hits := idx.CrimeZonesAlongRoute(path, opts)

	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1 (Far is out of range, Clean has zero crimes)", len(hits))
	}
	if hits[0].AreaName != "Near" {
		t.Fatalf("hit = %q, want Near", hits[0].AreaName)
	}
	if hits[0].DistanceMeters > opts.MaxDistanceMeters {
		t.Fatalf("hit distance %.0f exceeds max %.0f", hits[0].DistanceMeters, opts.MaxDistanceMeters)
	}

	// The retained distance must be the closest sampled one.
	best := opts.MaxDistanceMeters
	for _, p := range path {
		if d := geo.Distance(p, areas[0].Center); d < best {
			best = d
		}
	}
	if hits[0].DistanceMeters != best {
		t.Fatalf("hit distance %.2f, want closest sample %.2f", hits[0].DistanceMeters, best)
	}
}

func TestCrimeZonesSortedAndDeduplicated(t *testing.T) {
	areas := []Area{
		{Name: "A", Center: domain.Point{Lat: 17.7005, Lng: 83.3002}},
		{Name: "B", Center: domain.Point{Lat: 17.7010, Lng: 83.3004}},
	}
	zones := []domain.SafetyZone{
		{AreaName: "B", CrimeCount: 3, Severity: domain.SeverityMedium, SafetyScore: 50},
		{AreaName: "A", CrimeCount: 5, Severity: domain.SeverityHigh, SafetyScore: 25},
	}
	idx := NewIndex(zones, areas)

	path := []domain.Point{
		{Lat: 17.7000, Lng: 83.3000},
		{Lat: 17.7006, Lng: 83.3002},
		{Lat: 17.7012, Lng: 83.3005},
	}

	hits := idx.CrimeZonesAlongRoute(path, CrimeScanOptions{MaxDistanceMeters: 1500, ScoreThreshold: 70})
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if hits[0].AreaName != "A" || hits[1].AreaName != "B" {
		t.Fatalf("order = [%s %s], want ascending safety score [A B]", hits[0].AreaName, hits[1].AreaName)
	}

	seen := map[string]bool{}
	for _, h := range hits {
		if seen[h.AreaName] {
			t.Fatalf("area %q duplicated", h.AreaName)
		}
		seen[h.AreaName] = true
	}
}

func TestGroupByType(t *testing.T) {
	hits := []domain.CrimeZoneHit{
		{AreaName: "Gajuwaka", CrimeType: domain.CrimeRobbery},
		{AreaName: "Old Gajuwaka", CrimeType: domain.CrimeRobbery},
		{AreaName: "NAD Junction", CrimeType: domain.CrimeAccident},
	}

	grouped := GroupByType(hits)
	if len(grouped) != 7 {
		t.Fatalf("groups = %d, want all 7 crime types", len(grouped))
	}
	if len(grouped[domain.CrimeRobbery]) != 2 {
		t.Fatalf("robbery hits = %d, want 2", len(grouped[domain.CrimeRobbery]))
	}
	if len(grouped[domain.CrimeMurder]) != 0 {
		t.Fatalf("murder hits = %d, want 0", len(grouped[domain.CrimeMurder]))
	}
}
