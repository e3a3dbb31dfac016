package dto

type PointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RoutesRequest struct {
	Source          *PointDTO `json:"source"`
	Destination     *PointDTO `json:"destination"`
	SourceName      string    `json:"source_name"`
	DestinationName string    `json:"destination_name"`
}

type CrimeZoneResponse struct {
	AreaName       string  `json:"area_name"`
	Street         string  `json:"street,omitempty"`
	CrimeType      string  `json:"crime_type"`
	CrimeCount     int     `json:"crime_count"`
	Severity       string  `json:"severity"`
	SafetyScore    int     `json:"safety_score"`
	DistanceMeters float64 `json:"distance_meters"`
}

type RouteResponse struct {
	ID              string              `json:"id"`
	Class           string              `json:"class"`
	Path            []PointDTO          `json:"path"`
	DistanceMeters  int                 `json:"distance_meters"`
	DurationSeconds int                 `json:"duration_seconds"`
	SafetyScore     int                 `json:"safety_score"`
	RiskLevel       string              `json:"risk_level"`
	DangerousAreas  []string            `json:"dangerous_areas,omitempty"`
	SafeAreas       []string            `json:"safe_areas,omitempty"`
	CrimeZones      []CrimeZoneResponse `json:"crime_zones,omitempty"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}
