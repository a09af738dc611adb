package dto

// ParseFeedbackRequest carries raw evaluator text
type ParseFeedbackRequest struct {
	Text string `json:"text" validate:"max=20000"`
}

// HealthResponse reports service and cache status
type HealthResponse struct {
	Status    string `json:"status"`
	Cache     string `json:"cache"`
	Pipelines int    `json:"pipelines"`
	Practices int    `json:"practices"`
}
