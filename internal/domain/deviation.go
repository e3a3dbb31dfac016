package domain

// Severity of a live-position deviation from the active route.
type DeviationSeverity string

const (
	DeviationSafe    DeviationSeverity = "safe"
	DeviationWarning DeviationSeverity = "warning"
	DeviationDanger  DeviationSeverity = "danger"
)

// Outcome of classifying one live position against the active route.
// Message is empty when no alert should be raised (within the safe
// corridor, or suppressed by the monitor's anti-noise policies).
type DeviationResult struct {
	IsDeviated     bool              `json:"is_deviated"`
	DistanceMeters float64           `json:"distance_meters"`
	Severity       DeviationSeverity `json:"severity"`
	Message        string            `json:"message,omitempty"`
}
