package monitor

import (
	"fmt"
	"sync"
	"time"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/geo"
	"safe-route-service/internal/safety"
)

// Classification boundaries for the live distance from the route, in
// meters. Boundaries are inclusive on the lower-severity side: exactly
// 100m is still safe, exactly 200m is a warning.
const (
	SafeCorridorMeters    = 100.0
	WarningLimitMeters    = 200.0
	GracePeriod           = 10 * time.Second
	AlertCooldown         = 30 * time.Second
	MinDisplacementMeters = 500.0
)

// AlertZoneScoreLimit bounds which zones get named in alert messages:
// only risky zones (score below 50) add useful context; naming a
// moderate zone would dress a routine detour up as a threat.
const AlertZoneScoreLimit = 50

// Tracker monitors one trip's live positions against its chosen route.
// Classification always reflects the latest position; the anti-noise
// policies (grace period after start, alert cooldown, minimum
// displacement from the start point) only suppress the alert message,
// never the classification itself.
//
// Safe for concurrent use; position updates for one trip are expected
// to be serial but nothing breaks if they are not.
type Tracker struct {
	mu sync.Mutex

	route []domain.Point
	idx   *safety.Index
	start domain.Point

	startedAt    time.Time
	lastAlertAt  time.Time
	lastSeverity domain.DeviationSeverity

	now func() time.Time
}

// NewTracker starts monitoring the given route. A nil or degenerate
// route yields a tracker whose updates are safe no-ops.
func NewTracker(route []domain.Point, idx *safety.Index, start domain.Point) *Tracker {
	t := &Tracker{
		route: route,
		idx:   idx,
		start: start,
		now:   time.Now,
	}
	t.startedAt = t.now()
	return t
}

// WithClock swaps the time source. Tests use this to step through the
// grace and cooldown windows without sleeping.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
	t.startedAt = now()
	return t
}

// Update classifies a live position against the route and decides
// whether to raise an alert. The returned Message is empty whenever the
// position is inside the safe corridor or an anti-noise policy
// suppresses the alert.
func (t *Tracker) Update(p domain.Point) domain.DeviationResult {
	if t == nil {
		return domain.DeviationResult{Severity: domain.DeviationSafe}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.route) < 2 || !p.Valid() {
		return domain.DeviationResult{Severity: domain.DeviationSafe}
	}

	dist := geo.DistanceToPolyline(p, t.route)
	severity := classify(dist)

	res := domain.DeviationResult{
		IsDeviated:     severity != domain.DeviationSafe,
		DistanceMeters: dist,
		Severity:       severity,
	}
	if severity == domain.DeviationSafe {
		t.lastSeverity = domain.DeviationSafe
		return res
	}

	now := t.now()
	switch {
	case now.Sub(t.startedAt) < GracePeriod:
		// GPS jitter right after trip start is routine.
		return res
	case geo.Distance(p, t.start) < MinDisplacementMeters:
		// Still near the start point; parking maneuvers look like
		// deviations.
		return res
	case !t.lastAlertAt.IsZero() &&
		now.Sub(t.lastAlertAt) < AlertCooldown &&
		rank(severity) <= rank(t.lastSeverity):
		// Within cooldown and not getting worse.
		return res
	}

	res.Message = t.alertMessage(p, dist, severity)
	t.lastAlertAt = now
	t.lastSeverity = severity
	return res
}

func classify(distanceMeters float64) domain.DeviationSeverity {
	switch {
	case distanceMeters <= SafeCorridorMeters:
		return domain.DeviationSafe
	case distanceMeters <= WarningLimitMeters:
		return domain.DeviationWarning
	default:
		return domain.DeviationDanger
	}
}

func rank(s domain.DeviationSeverity) int {
	switch s {
	case domain.DeviationWarning:
		return 1
	case domain.DeviationDanger:
		return 2
	default:
		return 0
	}
}

// alertMessage names the nearest known zone when one is close enough
// to be meaningful context and risky enough to warrant the mention.
func (t *Tracker) alertMessage(p domain.Point, dist float64, severity domain.DeviationSeverity) string {
	base := fmt.Sprintf("You are %.0fm off the planned route.", dist)
	if severity == domain.DeviationDanger {
		base = fmt.Sprintf("You are %.0fm off the planned route. Return to the route immediately.", dist)
	}

	if t.idx != nil {
		if zone, _, ok := t.idx.NearestZone(p, safety.MatchRadiusMeters); ok && zone.SafetyScore < AlertZoneScoreLimit {
			return fmt.Sprintf("%s Nearby area %s has a safety score of %d.", base, zone.AreaName, zone.SafetyScore)
		}
	}
	return base
}
