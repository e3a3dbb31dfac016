package dto

type ReportRequest struct {
	Area     string `json:"area"`
	Street   string `json:"street"`
	Severity string `json:"severity"`
}

type ReportResponse struct {
	Status string `json:"status"`
}
