package safety

import (
	"testing"

	"safe-route-service/internal/domain"
)

func testAreas() []Area {
	return []Area{
		{Name: "NAD", Center: domain.Point{Lat: 17.7430, Lng: 83.2480}},
		{Name: "NAD Junction", Center: domain.Point{Lat: 17.7447, Lng: 83.2425}},
		{Name: "Gajuwaka", Center: domain.Point{Lat: 17.6863, Lng: 83.2010}},
	}
}

func TestScoreForPointMatchesNearestZone(t *testing.T) {
	zones := []domain.SafetyZone{
		{AreaName: "Gajuwaka", CrimeCount: 12, Severity: domain.SeverityHigh, SafetyScore: 35},
		{AreaName: "NAD", CrimeCount: 4, Severity: domain.SeverityLow, SafetyScore: 60},
	}
	idx := NewIndex(zones, testAreas())

	// On top of the Gajuwaka center.
	got := idx.ScoreForPoint(domain.Point{Lat: 17.6863, Lng: 83.2010})
	if got != 35 {
		t.Fatalf("score = %d, want 35", got)
	}

	// Far from every zone center: neutral default.
	got = idx.ScoreForPoint(domain.Point{Lat: 17.90, Lng: 83.45})
	if got != NeutralScore {
		t.Fatalf("score = %d, want neutral %d", got, NeutralScore)
	}
}

func TestScoreForPointIdempotent(t *testing.T) {
	zones := []domain.SafetyZone{
		{AreaName: "NAD", CrimeCount: 4, Severity: domain.SeverityLow, SafetyScore: 55},
	}
	idx := NewIndex(zones, testAreas())
	p := domain.Point{Lat: 17.7435, Lng: 83.2470}

	first := idx.ScoreForPoint(p)
	second := idx.ScoreForPoint(p)
	if first != second {
		t.Fatalf("scores differ across calls: %d vs %d", first, second)
	}
}

func TestFuzzyNameMatching(t *testing.T) {
	// "NAD" is a substring of "NAD Junction": containment in either
	// direction must match, and the first area-table entry wins.
	if c, ok := NewIndex(nil, testAreas()).resolveCenter("NAD Junction Flyover"); !ok {
		t.Fatal("expected containment match for NAD Junction Flyover")
	} else if c != testAreas()[0].Center {
		t.Fatalf("resolved %v, want first matching entry %v", c, testAreas()[0].Center)
	}

	if _, ok := NewIndex(nil, testAreas()).resolveCenter("Madhurawada"); ok {
		t.Fatal("unexpected match for unknown area")
	}

	if matchesArea("", "NAD") || matchesArea("NAD", "") {
		t.Fatal("empty names must never match")
	}
	if !matchesArea("gajuwaka", "Gajuwaka") {
		t.Fatal("matching must be case-insensitive")
	}
}

func TestEmptyZoneTableIsNeutral(t *testing.T) {
	idx := NewIndex(nil, testAreas())
	if got := idx.ScoreForPoint(domain.Point{Lat: 17.7430, Lng: 83.2480}); got != NeutralScore {
		t.Fatalf("score = %d, want %d", got, NeutralScore)
	}
}

func TestScoreForPath(t *testing.T) {
	zones := []domain.SafetyZone{
		{AreaName: "Gajuwaka", CrimeCount: 12, Severity: domain.SeverityHigh, SafetyScore: 30},
		{AreaName: "NAD", CrimeCount: 1, Severity: domain.SeverityLow, SafetyScore: 90},
	}
	idx := NewIndex(zones, testAreas())

	// A short path through the Gajuwaka center.
	path := []domain.Point{
		{Lat: 17.6850, Lng: 83.2000},
		{Lat: 17.6863, Lng: 83.2010},
		{Lat: 17.6880, Lng: 83.2020},
	}

	ps := idx.ScoreForPath(path, 1)
	if ps.OverallScore != 30 {
		t.Fatalf("overall = %d, want 30", ps.OverallScore)
	}
	if ps.RiskLevel != domain.RiskRisky {
		t.Fatalf("risk = %q, want risky", ps.RiskLevel)
	}
	if len(ps.DangerousAreas) != 1 || ps.DangerousAreas[0] != "Gajuwaka" {
		t.Fatalf("dangerous areas = %v, want [Gajuwaka]", ps.DangerousAreas)
	}

	// Empty path degrades to a neutral result rather than erroring.
	ps = idx.ScoreForPath(nil, 0)
	if ps.OverallScore != NeutralScore || ps.RiskLevel != domain.RiskSafe {
		t.Fatalf("empty path score = %+v, want neutral/safe", ps)
	}
}

func TestRiskLevelForScore(t *testing.T) {
	cases := []struct {
		score int
		want  domain.RiskLevel
	}{
		{85, domain.RiskSafe},
		{70, domain.RiskSafe},
		{60, domain.RiskModerate},
		{50, domain.RiskModerate},
		{49, domain.RiskRisky},
		{30, domain.RiskRisky},
	}
	for _, c := range cases {
		if got := domain.RiskLevelForScore(c.score); got != c.want {
			t.Fatalf("RiskLevelForScore(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}
