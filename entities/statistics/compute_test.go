package statistics

import (
	"api/schemas"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func statusAt(status string, createdAt time.Time) schemas.Request {
	return schemas.Request{Status: status, CreatedAt: createdAt, UpdatedAt: createdAt}
}

func TestComputeSameDayScenario(t *testing.T) {
	now := time.Date(2025, 6, 12, 18, 0, 0, 0, time.Local)
	morning := time.Date(2025, 6, 12, 9, 0, 0, 0, time.Local)

	collection := []schemas.Request{
		statusAt(schemas.REQUEST_STATUS_NEW, morning),
		statusAt(schemas.REQUEST_STATUS_ACCEPTED, morning.Add(time.Hour)),
		statusAt(schemas.REQUEST_STATUS_ACCEPTED, morning.Add(2*time.Hour)),
	}

	stats := Compute(collection, now)

	require.Equal(t, 3, stats.Total.All)
	require.Equal(t, 1, stats.Total.New)
	require.Equal(t, 2, stats.Total.Accepted)
	require.Equal(t, 0, stats.Total.Rejected)
	require.Equal(t, 67, stats.Total.AcceptanceRate)
	require.Equal(t, 0, stats.Total.RejectionRate)

	// The daily series covers the last 30 days oldest-first, so the last
	// bucket is today.
	require.Len(t, stats.DailyStats, 30)
	today := stats.DailyStats[29]
	require.Equal(t, "2025-06-12", today.Date)
	require.Equal(t, 3, today.Count)
	require.Equal(t, 2, today.Accepted)
	require.Equal(t, 1, today.New)
	require.Equal(t, 0, today.Rejected)

	require.Len(t, stats.HourlyStats, 24)
	require.Equal(t, 1, stats.HourlyStats[9].Count)
	require.Equal(t, 1, stats.HourlyStats[10].Accepted)
	require.Equal(t, 3, stats.Today.Count)
}

func TestComputeEmptyNeverDividesByZero(t *testing.T) {
	stats := Compute([]schemas.Request{}, time.Now())

	require.Equal(t, 0, stats.Total.All)
	require.Equal(t, 0, stats.Total.AcceptanceRate)
	require.Equal(t, 0, stats.Total.RejectionRate)
	require.Len(t, stats.DailyStats, 30)
	require.Len(t, stats.HourlyStats, 24)
}

func TestComputeRatesSumAtMostHundred(t *testing.T) {
	now := time.Now()
	collection := []schemas.Request{
		statusAt(schemas.REQUEST_STATUS_ACCEPTED, now),
		statusAt(schemas.REQUEST_STATUS_REJECTED, now),
		statusAt(schemas.REQUEST_STATUS_NEW, now),
		statusAt(schemas.REQUEST_STATUS_NO_ANSWER, now),
	}

	stats := Compute(collection, now)
	require.LessOrEqual(t, stats.Total.AcceptanceRate+stats.Total.RejectionRate, 100)
}
