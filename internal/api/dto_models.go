package api

// Result is the envelope of every API response.
type Result struct {
	OK      bool        `json:"ok"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// IDResponse carries the ID of a newly appended document.
type IDResponse struct {
	ID string `json:"id"`
}

// RewardResponse carries a reward balance.
type RewardResponse struct {
	Reward int64 `json:"reward"`
}
