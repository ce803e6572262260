package calculations

import (
	"api/schemas"
	"time"
)

// Finalize computes the spend/conversion results of a tracking session
// against the requests created between the session start and now. The
// arithmetic is a pure function of its inputs: finalizing twice with the
// same inputs yields identical results.
func Finalize(session schemas.CalculationEntry, remainingBalance float64, collection []schemas.Request, now time.Time) schemas.CalculationEntry {
	session.EndDate = now
	session.RemainingBalance = remainingBalance

	spent := session.Amount - remainingBalance

	totalRequests := 0
	acceptedRequests := 0
	for _, request := range collection {
		if request.CreatedAt.Before(session.StartDate) || request.CreatedAt.After(now) {
			continue
		}
		totalRequests++
		if request.Status == schemas.REQUEST_STATUS_ACCEPTED {
			acceptedRequests++
		}
	}

	results := &schemas.CalculationResults{
		TotalRequests:    totalRequests,
		AcceptedRequests: acceptedRequests,
		Spent:            spent,
	}

	if totalRequests > 0 {
		results.CostPerRequest = spent / float64(totalRequests)
		results.ConversionRate = float64(acceptedRequests) / float64(totalRequests) * 100
	}

	// No acceptances means no cost per acceptance exists yet; the field
	// stays nil instead of silently dividing by zero.
	if acceptedRequests > 0 {
		costPerAccepted := spent / float64(acceptedRequests)
		results.CostPerAccepted = &costPerAccepted
	}

	session.Results = results
	return session
}
