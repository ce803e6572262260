package schemas

import "time"

type StatisticsTotal struct {
	All            int `json:"all"`
	New            int `json:"new"`
	Accepted       int `json:"accepted"`
	Rejected       int `json:"rejected"`
	NoAnswer       int `json:"no_answer"`
	AcceptanceRate int `json:"acceptance_rate"`
	RejectionRate  int `json:"rejection_rate"`
}

type StatisticsPeriod struct {
	Count    int `json:"count"`
	New      int `json:"new"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

type HourlyStat struct {
	Hour     int `json:"hour"`
	Count    int `json:"count"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

type DailyStat struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	Accepted int    `json:"accepted"`
	Rejected int    `json:"rejected"`
	New      int    `json:"new"`
}

type Statistics struct {
	Total       StatisticsTotal  `json:"total"`
	Today       StatisticsPeriod `json:"today"`
	ThisWeek    StatisticsPeriod `json:"this_week"`
	ThisMonth   StatisticsPeriod `json:"this_month"`
	HourlyStats []HourlyStat     `json:"hourly_stats"`
	DailyStats  []DailyStat      `json:"daily_stats"`
}

// WindowStatistics is recomputed in full for a concrete [from, to] window;
// requests with status new or no_answer both count as unresolved.
type WindowStatistics struct {
	From           time.Time      `json:"from"`
	To             time.Time      `json:"to"`
	Total          int            `json:"total"`
	Accepted       int            `json:"accepted"`
	Rejected       int            `json:"rejected"`
	Unresolved     int            `json:"unresolved"`
	ConversionRate float64        `json:"conversion_rate"`
	BySource       map[string]int `json:"by_source"`
	ByPriority     map[string]int `json:"by_priority"`
	ByDevice       map[string]int `json:"by_device"`
	ByBrowser      map[string]int `json:"by_browser"`
	ByHour         map[int]int    `json:"by_hour"`
	ByWeekday      map[string]int `json:"by_weekday"`
	ByAgeBracket   map[string]int `json:"by_age_bracket"`
	ByTag          map[string]int `json:"by_tag"`
}
