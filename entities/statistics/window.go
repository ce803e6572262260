package statistics

import (
	"api/utils"
	"fmt"
	"time"
)

const (
	PERIOD_TODAY     = "today"
	PERIOD_YESTERDAY = "yesterday"
	PERIOD_WEEK      = "week"
	PERIOD_MONTH     = "month"
	PERIOD_QUARTER   = "quarter"
	PERIOD_YEAR      = "year"
	PERIOD_ALL       = "all"
	PERIOD_CUSTOM    = "custom"
)

// ResolveWindow turns a named period into a concrete [from, to] range using
// local-time calendar boundaries. Weeks start on Monday; month, quarter and
// year use calendar boundaries. "all" leaves from open (zero time).
func ResolveWindow(period string, from, to time.Time, now time.Time) (time.Time, time.Time, error) {
	switch period {
	case PERIOD_TODAY:
		return utils.DayStart(now), utils.DayEnd(now), nil

	case PERIOD_YESTERDAY:
		yesterday := now.AddDate(0, 0, -1)
		return utils.DayStart(yesterday), utils.DayEnd(yesterday), nil

	case PERIOD_WEEK:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		weekStart := utils.DayStart(now.AddDate(0, 0, -daysSinceMonday))
		return weekStart, utils.DayEnd(weekStart.AddDate(0, 0, 6)), nil

	case PERIOD_MONTH:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return monthStart, utils.DayEnd(monthStart.AddDate(0, 1, -1)), nil

	case PERIOD_QUARTER:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		quarterStart := time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
		return quarterStart, utils.DayEnd(quarterStart.AddDate(0, 3, -1)), nil

	case PERIOD_YEAR:
		yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return yearStart, utils.DayEnd(yearStart.AddDate(1, 0, -1)), nil

	case PERIOD_ALL:
		return time.Time{}, utils.DayEnd(now), nil

	case PERIOD_CUSTOM:
		if from.IsZero() || to.IsZero() {
			return time.Time{}, time.Time{}, fmt.Errorf("custom period requires from and to")
		}
		return from, to, nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", period)
}
