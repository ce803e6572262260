package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDayMonthYear(t *testing.T) {
	parsed, err := ParseDayMonthYear("14.06.1990")
	require.NoError(t, err)
	require.Equal(t, 1990, parsed.Year())
	require.Equal(t, time.June, parsed.Month())
	require.Equal(t, 14, parsed.Day())

	parsed, err = ParseDayMonthYear("  01.01.2000 ")
	require.NoError(t, err)
	require.Equal(t, 2000, parsed.Year())
}

func TestParseDayMonthYearRejectsMalformed(t *testing.T) {
	malformed := []string{
		"",
		"1990-06-14",
		"14.06",
		"14.06.1990.01",
		"aa.06.1990",
		"14.bb.1990",
		"14.06.cc",
		"32.01.2000",
		"01.13.2000",
		"01.01.1850",
	}

	for _, input := range malformed {
		_, err := ParseDayMonthYear(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestAgeAt(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.Local)

	require.Equal(t, 34, AgeAt(birth, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)))
	require.Equal(t, 33, AgeAt(birth, time.Date(2024, time.June, 14, 0, 0, 0, 0, time.Local)))
	require.Equal(t, 33, AgeAt(birth, time.Date(2024, time.May, 20, 0, 0, 0, 0, time.Local)))
	require.Equal(t, 34, AgeAt(birth, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.Local)))
}

func TestIsValidDate(t *testing.T) {
	require.True(t, IsValidDate("2025-06-12"))
	require.True(t, IsValidDate("2025-06-12T10:00:00Z"))
	require.True(t, IsValidDate("14.06.1990"))
	require.False(t, IsValidDate(""))
	require.False(t, IsValidDate("12 June 2025"))
}

func TestDayBounds(t *testing.T) {
	moment := time.Date(2025, 6, 12, 15, 30, 45, 0, time.Local)

	start := DayStart(moment)
	end := DayEnd(moment)

	require.Equal(t, 0, start.Hour())
	require.Equal(t, 23, end.Hour())
	require.True(t, SameDay(start, end))
	require.True(t, start.Before(moment))
	require.True(t, end.After(moment))
	require.False(t, SameDay(end, end.Add(time.Nanosecond)))
}
