package dto

type StartTripRequest struct {
	Path  []PointDTO `json:"path"`
	Start *PointDTO  `json:"start"`
}

type StartTripResponse struct {
	TripID string `json:"trip_id"`
}

type PositionRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DeviationResponse struct {
	IsDeviated     bool    `json:"is_deviated"`
	DistanceMeters float64 `json:"distance_meters"`
	Severity       string  `json:"severity"`
	Message        string  `json:"message,omitempty"`
}
