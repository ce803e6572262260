package statistics

import (
	"api/schemas"
	"api/utils"
	"math"
	"time"
)

// Compute builds the all-time statistics report from a snapshot of the
// request collection. It performs no I/O and is safe to rerun in full on
// every subscription push.
func Compute(collection []schemas.Request, now time.Time) schemas.Statistics {
	stats := schemas.Statistics{
		HourlyStats: make([]schemas.HourlyStat, 24),
		DailyStats:  make([]schemas.DailyStat, 0, 30),
	}

	for _, request := range collection {
		stats.Total.All++
		switch request.Status {
		case schemas.REQUEST_STATUS_NEW:
			stats.Total.New++
		case schemas.REQUEST_STATUS_ACCEPTED:
			stats.Total.Accepted++
		case schemas.REQUEST_STATUS_REJECTED:
			stats.Total.Rejected++
		case schemas.REQUEST_STATUS_NO_ANSWER:
			stats.Total.NoAnswer++
		}
	}

	stats.Total.AcceptanceRate = ratePercent(stats.Total.Accepted, stats.Total.All)
	stats.Total.RejectionRate = ratePercent(stats.Total.Rejected, stats.Total.All)

	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)

	for _, request := range collection {
		created := request.CreatedAt.Local()

		if utils.SameDay(created, now) {
			countInto(&stats.Today, request.Status)
			hour := created.Hour()
			stats.HourlyStats[hour].Count++
			switch request.Status {
			case schemas.REQUEST_STATUS_ACCEPTED:
				stats.HourlyStats[hour].Accepted++
			case schemas.REQUEST_STATUS_REJECTED:
				stats.HourlyStats[hour].Rejected++
			}
		}
		if !created.Before(weekAgo) {
			countInto(&stats.ThisWeek, request.Status)
		}
		if !created.Before(monthAgo) {
			countInto(&stats.ThisMonth, request.Status)
		}
	}

	for hour := range stats.HourlyStats {
		stats.HourlyStats[hour].Hour = hour
	}

	// Last 30 calendar days, oldest first.
	for dayIndex := 29; dayIndex >= 0; dayIndex-- {
		day := utils.DayStart(now.AddDate(0, 0, -dayIndex))
		dayEnd := utils.DayEnd(day)

		daily := schemas.DailyStat{Date: day.Format("2006-01-02")}
		for _, request := range collection {
			created := request.CreatedAt.Local()
			if created.Before(day) || created.After(dayEnd) {
				continue
			}
			daily.Count++
			switch request.Status {
			case schemas.REQUEST_STATUS_NEW:
				daily.New++
			case schemas.REQUEST_STATUS_ACCEPTED:
				daily.Accepted++
			case schemas.REQUEST_STATUS_REJECTED:
				daily.Rejected++
			}
		}
		stats.DailyStats = append(stats.DailyStats, daily)
	}

	return stats
}

func countInto(period *schemas.StatisticsPeriod, status string) {
	period.Count++
	switch status {
	case schemas.REQUEST_STATUS_NEW:
		period.New++
	case schemas.REQUEST_STATUS_ACCEPTED:
		period.Accepted++
	case schemas.REQUEST_STATUS_REJECTED:
		period.Rejected++
	}
}

func ratePercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
