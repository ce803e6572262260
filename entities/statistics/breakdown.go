package statistics

import (
	"api/schemas"
	"api/utils"
	"strings"
	"time"
)

const UNKNOWN_SOURCE_LABEL = "Неизвестно"

var weekdayNames = [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// ComputeWindow aggregates the requests created inside [from, to]. A zero
// from leaves the lower bound open. Pure function of its inputs.
func ComputeWindow(collection []schemas.Request, from, to time.Time) schemas.WindowStatistics {
	stats := schemas.WindowStatistics{
		From:         from,
		To:           to,
		BySource:     map[string]int{},
		ByPriority:   map[string]int{},
		ByDevice:     map[string]int{},
		ByBrowser:    map[string]int{},
		ByHour:       map[int]int{},
		ByWeekday:    map[string]int{},
		ByAgeBracket: map[string]int{},
		ByTag:        map[string]int{},
	}

	now := time.Now()

	for _, request := range collection {
		created := request.CreatedAt.Local()
		if !from.IsZero() && created.Before(from) {
			continue
		}
		if !to.IsZero() && created.After(to) {
			continue
		}

		stats.Total++
		switch request.Status {
		case schemas.REQUEST_STATUS_ACCEPTED:
			stats.Accepted++
		case schemas.REQUEST_STATUS_REJECTED:
			stats.Rejected++
		default:
			// "new" and "no_answer" are both still unresolved.
			stats.Unresolved++
		}

		source := request.Source
		if source == "" {
			source = UNKNOWN_SOURCE_LABEL
		}
		stats.BySource[source]++

		priority := request.Priority
		if priority == "" {
			priority = schemas.REQUEST_PRIORITY_MEDIUM
		}
		stats.ByPriority[priority]++

		stats.ByDevice[DeviceClass(request.UserAgent)]++
		stats.ByBrowser[BrowserFamily(request.UserAgent)]++
		stats.ByHour[created.Hour()]++
		stats.ByWeekday[weekdayNames[created.Weekday()]]++
		stats.ByAgeBracket[AgeBracket(request.BirthDate, now)]++

		for _, tag := range request.Tags {
			stats.ByTag[tag]++
		}
	}

	if stats.Total > 0 {
		stats.ConversionRate = float64(stats.Accepted) / float64(stats.Total) * 100
	}

	return stats
}

// DeviceClass infers a coarse device class from the stored client
// identification string.
func DeviceClass(userAgent string) string {
	if userAgent == "" {
		return "unknown"
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone") {
		return "mobile"
	}
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	return "desktop"
}

// BrowserFamily classifies a user agent string. Chrome-based agents embed
// "safari", so the Safari check must exclude chrome; Chromium Edge reports
// "edg", which is why the Chrome check excludes it.
func BrowserFamily(userAgent string) string {
	if userAgent == "" {
		return "unknown"
	}

	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg"):
		return "chrome"
	case strings.Contains(ua, "firefox"):
		return "firefox"
	case strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome"):
		return "safari"
	case strings.Contains(ua, "edge") || strings.Contains(ua, "edg"):
		return "edge"
	}
	return "other"
}

// AgeBracket maps a DD.MM.YYYY birth date to an age bracket. Unparsable
// values land in "unknown" instead of failing the aggregation.
func AgeBracket(birthDate string, now time.Time) string {
	if birthDate == "" {
		return "unknown"
	}

	parsed, err := utils.ParseDayMonthYear(birthDate)
	if err != nil {
		return "unknown"
	}

	age := utils.AgeAt(parsed, now)
	switch {
	case age < 0:
		return "unknown"
	case age < 18:
		return "<18"
	case age < 25:
		return "18-24"
	case age < 35:
		return "25-34"
	case age < 45:
		return "35-44"
	case age < 55:
		return "45-54"
	}
	return "55+"
}
