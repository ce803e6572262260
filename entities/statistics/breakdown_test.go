package statistics

import (
	"api/schemas"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBrowserFamily(t *testing.T) {
	chromeUA := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0 Safari/537.36"
	edgeUA := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0 Safari/537.36 Edg/125.0"
	safariUA := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15"

	// Chrome embeds "safari" and Edge embeds "chrome", so order of checks
	// matters.
	require.Equal(t, "chrome", BrowserFamily(chromeUA))
	require.Equal(t, "edge", BrowserFamily(edgeUA))
	require.Equal(t, "safari", BrowserFamily(safariUA))
	require.Equal(t, "firefox", BrowserFamily("Mozilla/5.0 (X11; Linux x86_64; rv:126.0) Gecko/20100101 Firefox/126.0"))
	require.Equal(t, "other", BrowserFamily("curl/8.5.0"))
	require.Equal(t, "unknown", BrowserFamily(""))
}

func TestDeviceClass(t *testing.T) {
	require.Equal(t, "mobile", DeviceClass("Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) Mobile/15E148"))
	require.Equal(t, "mobile", DeviceClass("Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari/537.36"))
	require.Equal(t, "tablet", DeviceClass("Mozilla/5.0 (iPad; CPU OS 17_4 like Mac OS X) AppleWebKit/605.1.15"))
	require.Equal(t, "desktop", DeviceClass("Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/125.0"))
	require.Equal(t, "unknown", DeviceClass(""))
}

func TestAgeBracket(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)

	require.Equal(t, "18-24", AgeBracket("01.01.2000", now))
	require.Equal(t, "<18", AgeBracket("01.01.2010", now))
	require.Equal(t, "25-34", AgeBracket("14.06.1990", now))
	// Birthday still one day ahead, so the person is 33, not 34.
	require.Equal(t, "25-34", AgeBracket("16.06.1990", now))
	require.Equal(t, "55+", AgeBracket("01.01.1950", now))
	require.Equal(t, "unknown", AgeBracket("", now))
	require.Equal(t, "unknown", AgeBracket("not-a-date", now))
	require.Equal(t, "unknown", AgeBracket("2000-01-01", now))
	// Birth date in the future.
	require.Equal(t, "unknown", AgeBracket("01.01.2030", now))
}

func TestComputeWindowBreakdowns(t *testing.T) {
	created := time.Date(2025, 6, 11, 14, 0, 0, 0, time.Local) // Wednesday

	collection := []schemas.Request{
		{
			Status:    schemas.REQUEST_STATUS_ACCEPTED,
			Source:    "instagram",
			UserAgent: "Mozilla/5.0 (iPhone) Mobile Safari/605.1.15",
			Tags:      []string{"vip", "repeat"},
			CreatedAt: created,
		},
		{
			Status:    schemas.REQUEST_STATUS_NEW,
			CreatedAt: created.Add(time.Hour),
		},
		{
			Status:    schemas.REQUEST_STATUS_NO_ANSWER,
			Source:    "instagram",
			CreatedAt: created.Add(2 * time.Hour),
		},
		{
			// Outside the window, must not be counted.
			Status:    schemas.REQUEST_STATUS_ACCEPTED,
			CreatedAt: created.AddDate(0, 0, -5),
		},
	}

	from := time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 6, 11, 23, 59, 59, 0, time.Local)
	stats := ComputeWindow(collection, from, to)

	require.Equal(t, 3, stats.Total)
	require.Equal(t, 1, stats.Accepted)
	require.Equal(t, 2, stats.Unresolved)
	require.Equal(t, 0, stats.Rejected)
	require.InDelta(t, 33.3, stats.ConversionRate, 0.1)

	require.Equal(t, 2, stats.BySource["instagram"])
	require.Equal(t, 1, stats.BySource[UNKNOWN_SOURCE_LABEL])
	require.Equal(t, 1, stats.ByDevice["mobile"])
	require.Equal(t, 2, stats.ByDevice["unknown"])
	require.Equal(t, 1, stats.ByHour[14])
	require.Equal(t, 3, stats.ByWeekday["Ср"])
	require.Equal(t, 1, stats.ByTag["vip"])
	require.Equal(t, 1, stats.ByTag["repeat"])

	// Missing priority falls back to the normalizer default.
	require.Equal(t, 3, stats.ByPriority[schemas.REQUEST_PRIORITY_MEDIUM])
}

func TestComputeWindowEmpty(t *testing.T) {
	stats := ComputeWindow(nil, time.Time{}, time.Now())

	require.Equal(t, 0, stats.Total)
	require.Equal(t, float64(0), stats.ConversionRate)
	require.NotNil(t, stats.BySource)
	require.NotNil(t, stats.ByTag)
}
