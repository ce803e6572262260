package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveWindowWeekStartsOnMonday(t *testing.T) {
	// 2025-06-12 is a Thursday.
	now := time.Date(2025, 6, 12, 15, 30, 0, 0, time.Local)

	from, to, err := ResolveWindow(PERIOD_WEEK, time.Time{}, time.Time{}, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local), from)
	require.Equal(t, time.Monday, from.Weekday())
	require.Equal(t, time.Sunday, to.Weekday())
	require.Equal(t, 15, to.Day())
}

func TestResolveWindowWeekOnSunday(t *testing.T) {
	// Sunday still belongs to the week that started the previous Monday.
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

	from, _, err := ResolveWindow(PERIOD_WEEK, time.Time{}, time.Time{}, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local), from)
}

func TestResolveWindowQuarter(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.Local)

	from, to, err := ResolveWindow(PERIOD_QUARTER, time.Time{}, time.Time{}, now)
	require.NoError(t, err)
	require.Equal(t, time.April, from.Month())
	require.Equal(t, 1, from.Day())
	require.Equal(t, time.June, to.Month())
	require.Equal(t, 30, to.Day())
}

func TestResolveWindowYear(t *testing.T) {
	now := time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local)

	from, to, err := ResolveWindow(PERIOD_YEAR, time.Time{}, time.Time{}, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), from)
	require.Equal(t, time.December, to.Month())
	require.Equal(t, 31, to.Day())
}

func TestResolveWindowAllLeavesFromOpen(t *testing.T) {
	now := time.Date(2025, 6, 12, 12, 0, 0, 0, time.Local)

	from, to, err := ResolveWindow(PERIOD_ALL, time.Time{}, time.Time{}, now)
	require.NoError(t, err)
	require.True(t, from.IsZero())
	require.Equal(t, 12, to.Day())
}

func TestResolveWindowCustomRequiresBothBounds(t *testing.T) {
	now := time.Now()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	_, _, err := ResolveWindow(PERIOD_CUSTOM, from, time.Time{}, now)
	require.Error(t, err)

	_, _, err = ResolveWindow(PERIOD_CUSTOM, time.Time{}, from, now)
	require.Error(t, err)

	gotFrom, gotTo, err := ResolveWindow(PERIOD_CUSTOM, from, now, now)
	require.NoError(t, err)
	require.Equal(t, from, gotFrom)
	require.Equal(t, now, gotTo)
}

func TestResolveWindowUnknownPeriod(t *testing.T) {
	_, _, err := ResolveWindow("fortnight", time.Time{}, time.Time{}, time.Now())
	require.Error(t, err)
}
