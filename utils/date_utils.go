package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Birth dates are stored as plain "DD.MM.YYYY" text, not as a date type.
const BIRTH_DATE_LAYOUT = "02.01.2006"

func IsValidDate(dateStr string) bool {
	if dateStr == "" {
		return false
	}

	formats := []string{
		"2006-01-02",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-07:00",
		time.RFC3339,
		BIRTH_DATE_LAYOUT,
	}

	for _, format := range formats {
		if _, err := time.Parse(format, dateStr); err == nil {
			return true
		}
	}

	return false
}

func ParseDayMonthYear(dateStr string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(dateStr), ".")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid birth date %q", dateStr)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birth date %q", dateStr)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birth date %q", dateStr)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birth date %q", dateStr)
	}

	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1900 {
		return time.Time{}, fmt.Errorf("invalid birth date %q", dateStr)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// Age counts completed years: one less than the year difference when the
// birthday has not happened yet this year.
func AgeAt(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}

func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
