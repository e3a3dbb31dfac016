package routing

// Estimator converts a route distance to an estimated duration in
// seconds. Kept as a function type so the traffic heuristic can be
// swapped without touching the planner.
type Estimator func(distanceMeters float64) int

// EstimateDuration is the default traffic-aware heuristic: an average
// speed band chosen by trip length, plus a signal-delay buffer every
// 3km. The provider's durations are ignored on purpose; they assume
// free-flowing traffic this region rarely has.
func EstimateDuration(distanceMeters float64) int {
	var speedKmh float64
	switch {
	case distanceMeters < 3000:
		speedKmh = 20
	case distanceMeters < 10000:
		speedKmh = 25
	default:
		speedKmh = 30
	}

	travel := distanceMeters / (speedKmh * 1000 / 3600)

	const signalDelaySeconds = 30
	signals := int(distanceMeters / 3000)
	return int(travel) + signals*signalDelaySeconds
}
