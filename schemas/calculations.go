package schemas

import "time"

// CalculationEntry is an ad-spend tracking session. Sessions are persisted
// per user in Redis, not in MongoDB, so the id is a UUID rather than an
// ObjectID.
type CalculationEntry struct {
	ID               string              `json:"id"`
	UserID           string              `json:"user_id"`
	StartDate        time.Time           `json:"start_date"`
	Amount           float64             `json:"amount"`
	EndDate          time.Time           `json:"end_date,omitzero"`
	RemainingBalance float64             `json:"remaining_balance"`
	Results          *CalculationResults `json:"results,omitempty"`
}

type CalculationResults struct {
	TotalRequests    int     `json:"total_requests"`
	AcceptedRequests int     `json:"accepted_requests"`
	Spent            float64 `json:"spent"`
	CostPerRequest   float64 `json:"cost_per_request"`
	// CostPerAccepted is null when there were no acceptances in the
	// window ("no conversions yet"), which is distinct from a true zero.
	CostPerAccepted *float64 `json:"cost_per_accepted"`
	ConversionRate  float64  `json:"conversion_rate"`
}
