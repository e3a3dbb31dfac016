package domain

// Severity of reported incidents within a safety zone.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ScoreDecay is the amount a zone's safety score drops when an incident
// of this severity is reported.
func (s Severity) ScoreDecay() int {
	switch s {
	case SeverityHigh:
		return 15
	case SeverityMedium:
		return 10
	case SeverityLow:
		return 5
	default:
		return 0
	}
}

// Valid reports whether the severity is one of the known values.
func (s Severity) Valid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// Represents a named locality with an incident history and a 0-100
// safety score. Zones are loaded read-only per planning request; the
// report-submission path is the only writer.
type SafetyZone struct {
	AreaName    string   `json:"area_name"`
	Street      string   `json:"street,omitempty"`
	CrimeCount  int      `json:"crime_count"`
	Severity    Severity `json:"severity"`
	SafetyScore int      `json:"safety_score"`
}

// The fixed set of crime categories zones are mapped onto.
type CrimeType string

const (
	CrimeKidnap     CrimeType = "kidnap"
	CrimeRobbery    CrimeType = "robbery"
	CrimeMurder     CrimeType = "murder"
	CrimeAssault    CrimeType = "assault"
	CrimeAccident   CrimeType = "accident"
	CrimeTheft      CrimeType = "theft"
	CrimeHarassment CrimeType = "harassment"
)

// AllCrimeTypes lists the crime categories in a stable order.
func AllCrimeTypes() []CrimeType {
	return []CrimeType{
		CrimeKidnap,
		CrimeRobbery,
		CrimeMurder,
		CrimeAssault,
		CrimeAccident,
		CrimeTheft,
		CrimeHarassment,
	}
}

// A SafetyZone annotated with a resolved crime type and its closest
// distance to a route. Produced only when the zone lies within the
// detection radius of a route.
type CrimeZoneHit struct {
	AreaName       string    `json:"area_name"`
	Street         string    `json:"street,omitempty"`
	CrimeType      CrimeType `json:"crime_type"`
	CrimeCount     int       `json:"crime_count"`
	Severity       Severity  `json:"severity"`
	SafetyScore    int       `json:"safety_score"`
	DistanceMeters float64   `json:"distance_meters"`
}
