package routing

// Config collects the numeric thresholds the search, validator and
// waypoint-synthesis stages run under. Earlier generations of this
// logic hard-coded these; they are kept as configuration so tuning
// never touches the algorithms.
type Config struct {
	// Endpoint tolerance: a candidate path must start/end within this
	// many meters of the requested source/destination.
	EndpointToleranceMeters float64

	// Validator limits.
	SharpTurnDegrees        float64 // bearing change counting as a sharp turn
	MaxSharpTurns           int     // sharp turns allowed per path
	BacktrackMeters         float64 // regression in distance-to-destination counting as backtracking
	BacktrackBearingDegrees float64 // net bearing window around the direct bearing
	MaxBacktracks           int     // backtracking instances allowed per path

	// Distinctness predicate.
	DistinctSamples  int     // interior points sampled on the first path
	DistinctFarMeter float64 // sample counts as "far" beyond this distance
	DistinctMinFar   int     // far samples required to call paths different

	// Search bounds.
	MaxExtraDistanceMeters float64 // safest-search detour budget over the fastest distance
	OptimizedBufferMeters  float64 // slack over the fastest/safest midpoint for the optimized bound
	JunctionRadiusMeters   float64 // nodes of different paths within this radius are linked

	// Waypoint synthesis.
	WaypointMinFraction     float64 // area must sit at least this far along the direct line
	WaypointMaxFraction     float64 // and at most this far
	WaypointMaxExtraRatio   float64 // max extra distance via the waypoint, as a ratio of direct
	WaypointMaxBearingDelta float64 // max bearing deviation from the direct line, degrees
	SafeZoneMinScore        int     // zones at/above this score qualify for the safe-zone strategy
	OffsetDistancesMeters   []float64
	MaxStrategyFanOut       int // concurrent provider calls for candidate synthesis

	// Post-hoc ordering constraints between the three classes.
	MinSafestExtraMeters float64 // safest must exceed fastest by at least this
	MaxSafestExtraMeters float64 // and by no more than this
	SafetyScoreMargin    int     // bump applied when safest does not out-score fastest
}

// DefaultConfig returns the thresholds used in production. Values are
// the most permissive of the generations this pipeline consolidates.
func DefaultConfig() Config {
	return Config{
		EndpointToleranceMeters: 200,

		SharpTurnDegrees:        120,
		MaxSharpTurns:           1,
		BacktrackMeters:         300,
		BacktrackBearingDegrees: 90,
		MaxBacktracks:           3,

		DistinctSamples:  14,
		DistinctFarMeter: 300,
		DistinctMinFar:   4,

		MaxExtraDistanceMeters: 7000,
		OptimizedBufferMeters:  2000,
		JunctionRadiusMeters:   250,

		WaypointMinFraction:     0.15,
		WaypointMaxFraction:     0.85,
		WaypointMaxExtraRatio:   0.8,
		WaypointMaxBearingDelta: 80,
		SafeZoneMinScore:        60,
		OffsetDistancesMeters:   []float64{1000, 2000, 4000},
		MaxStrategyFanOut:       5,

		MinSafestExtraMeters: 300,
		MaxSafestExtraMeters: 7000,
		SafetyScoreMargin:    5,
	}
}
