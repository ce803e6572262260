package calculations

import (
	"api/schemas"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func requestsInWindow(start time.Time, total, accepted int) []schemas.Request {
	collection := make([]schemas.Request, 0, total)
	for index := 0; index < total; index++ {
		status := schemas.REQUEST_STATUS_NEW
		if index < accepted {
			status = schemas.REQUEST_STATUS_ACCEPTED
		}
		collection = append(collection, schemas.Request{
			Status:    status,
			CreatedAt: start.Add(time.Duration(index) * time.Minute),
		})
	}
	return collection
}

func TestFinalizeNoAcceptancesLeavesCostPerAcceptedNil(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	now := start.AddDate(0, 0, 10)
	session := schemas.CalculationEntry{ID: "s1", StartDate: start, Amount: 1000}

	result := Finalize(session, 200, requestsInWindow(start, 50, 0), now)

	require.NotNil(t, result.Results)
	require.Equal(t, 50, result.Results.TotalRequests)
	require.Equal(t, 0, result.Results.AcceptedRequests)
	require.Equal(t, float64(800), result.Results.Spent)
	require.Equal(t, float64(16), result.Results.CostPerRequest)
	require.Nil(t, result.Results.CostPerAccepted)
	require.Equal(t, float64(0), result.Results.ConversionRate)
	require.Equal(t, now, result.EndDate)
	require.Equal(t, float64(200), result.RemainingBalance)
}

func TestFinalizeWithAcceptances(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	now := start.AddDate(0, 0, 7)
	session := schemas.CalculationEntry{ID: "s2", StartDate: start, Amount: 500}

	result := Finalize(session, 100, requestsInWindow(start, 20, 5), now)

	require.Equal(t, float64(400), result.Results.Spent)
	require.Equal(t, float64(20), result.Results.CostPerRequest)
	require.NotNil(t, result.Results.CostPerAccepted)
	require.Equal(t, float64(80), *result.Results.CostPerAccepted)
	require.Equal(t, float64(25), result.Results.ConversionRate)
}

func TestFinalizeCountsOnlyRequestsInsideTheSession(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)
	now := start.AddDate(0, 0, 1)
	session := schemas.CalculationEntry{ID: "s3", StartDate: start, Amount: 100}

	collection := []schemas.Request{
		{Status: schemas.REQUEST_STATUS_ACCEPTED, CreatedAt: start.Add(-time.Hour)},
		{Status: schemas.REQUEST_STATUS_ACCEPTED, CreatedAt: start.Add(time.Hour)},
		{Status: schemas.REQUEST_STATUS_NEW, CreatedAt: now.Add(time.Hour)},
	}

	result := Finalize(session, 50, collection, now)
	require.Equal(t, 1, result.Results.TotalRequests)
	require.Equal(t, 1, result.Results.AcceptedRequests)
}

func TestFinalizeIsIdempotent(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	now := start.AddDate(0, 0, 3)
	session := schemas.CalculationEntry{ID: "s4", StartDate: start, Amount: 300}
	collection := requestsInWindow(start, 10, 4)

	first := Finalize(session, 60, collection, now)
	second := Finalize(session, 60, collection, now)

	require.Equal(t, first.Results, second.Results)
	require.Equal(t, first.EndDate, second.EndDate)
}

func TestFinalizeNoRequestsInWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	session := schemas.CalculationEntry{ID: "s5", StartDate: start, Amount: 100}

	result := Finalize(session, 100, nil, start.AddDate(0, 0, 1))

	require.Equal(t, 0, result.Results.TotalRequests)
	require.Equal(t, float64(0), result.Results.Spent)
	require.Equal(t, float64(0), result.Results.CostPerRequest)
	require.Nil(t, result.Results.CostPerAccepted)
}
