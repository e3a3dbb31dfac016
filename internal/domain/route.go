package domain

// The three route classes offered per planning request.
type RouteClass string

const (
	RouteFastest   RouteClass = "fastest"
	RouteSafest    RouteClass = "safest"
	RouteOptimized RouteClass = "optimized"
)

// Risk classification derived from a safety score.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskModerate RiskLevel = "moderate"
	RiskRisky    RiskLevel = "risky"
)

// RiskLevelForScore maps a 0-100 safety score to its risk level:
// safe at 70 and above, risky below 50, moderate in between.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskSafe
	case score < 50:
		return RiskRisky
	default:
		return RiskModerate
	}
}

// Represents one planned route option. The path always holds at least
// two points; the first is within endpoint tolerance of the source and
// the last within tolerance of the destination. RiskLevel follows
// RiskLevelForScore, except the degenerate zero-distance result which
// reports moderate risk.
type RouteCandidate struct {
	ID              string     `json:"id"`
	Class           RouteClass `json:"class"`
	Path            []Point    `json:"path"`
	DistanceMeters  int        `json:"distance_meters"`
	DurationSeconds int        `json:"duration_seconds"`
	SafetyScore     int        `json:"safety_score"`
	RiskLevel       RiskLevel  `json:"risk_level"`
}
