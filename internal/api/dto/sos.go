package dto

type SOSRequest struct {
	Lat    float64  `json:"lat"`
	Lng    float64  `json:"lng"`
	Phones []string `json:"phones"`
}

type SOSResponse struct {
	SentCount int    `json:"sent_count"`
	Message   string `json:"message"`
}
