package requests

import (
	"api/schemas"
	"api/utils"
	"sort"
	"strings"
	"time"
)

// CompanyRef identifies a company either by id or by the legacy
// denormalized name that old imports stored in place of an id.
type CompanyRef struct {
	ID   string
	Name string
}

func ByID(id string) CompanyRef {
	return CompanyRef{ID: id}
}

func ByName(name string) CompanyRef {
	return CompanyRef{Name: name}
}

func (ref CompanyRef) isZero() bool {
	return ref.ID == "" && ref.Name == ""
}

func (ref CompanyRef) matches(companyID string) bool {
	if ref.ID != "" && companyID == ref.ID {
		return true
	}
	if ref.Name != "" && strings.EqualFold(strings.TrimSpace(companyID), strings.TrimSpace(ref.Name)) {
		return true
	}
	return false
}

// Filter is evaluated over an already fetched in-memory collection. The
// persisted store only offers coarse single-field filtering, so handlers
// fetch broadly and post-filter here. Absent fields are wildcards.
type Filter struct {
	Status  string
	Company CompanyRef
	From    time.Time
	To      time.Time
	Text    string
}

func (f Filter) Matches(request schemas.Request) bool {
	if f.Status != "" && f.Status != "all" && request.Status != f.Status {
		return false
	}

	if !f.Company.isZero() && !f.Company.matches(request.CompanyID) {
		return false
	}

	if !f.From.IsZero() && request.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && request.CreatedAt.After(f.To) {
		return false
	}

	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		haystacks := []string{request.FullName, request.Phone, request.BirthDate, request.Comment, request.Title}
		found := false
		for _, field := range haystacks {
			if strings.Contains(strings.ToLower(field), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Apply returns the matching subset ordered newest-first.
func (f Filter) Apply(collection []schemas.Request) []schemas.Request {
	matched := []schemas.Request{}
	for _, request := range collection {
		if f.Matches(request) {
			matched = append(matched, request)
		}
	}
	SortNewestFirst(matched)
	return matched
}

func SortNewestFirst(collection []schemas.Request) {
	sort.SliceStable(collection, func(i, j int) bool {
		return collection[i].CreatedAt.After(collection[j].CreatedAt)
	})
}

type DayGroup struct {
	Date     string            `json:"date"`
	Label    string            `json:"label"`
	Requests []schemas.Request `json:"requests"`
}

// GroupByDay splits requests into calendar-day groups, most recent day
// first, each group itself newest-first. Labels are derived from the given
// wall-clock "now" on every call and must not be cached by callers.
func GroupByDay(collection []schemas.Request, now time.Time) []DayGroup {
	byDay := map[string][]schemas.Request{}
	days := map[string]time.Time{}

	for _, request := range collection {
		day := utils.DayStart(request.CreatedAt.Local())
		key := day.Format("2006-01-02")
		byDay[key] = append(byDay[key], request)
		days[key] = day
	}

	groups := make([]DayGroup, 0, len(byDay))
	for key, day := range days {
		dayRequests := byDay[key]
		SortNewestFirst(dayRequests)
		groups = append(groups, DayGroup{
			Date:     key,
			Label:    dayLabel(day, now),
			Requests: dayRequests,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})

	return groups
}

func dayLabel(day, now time.Time) string {
	if utils.SameDay(day, now) {
		return "Сегодня"
	}
	if utils.SameDay(day, now.AddDate(0, 0, -1)) {
		return "Вчера"
	}
	return day.Format("02.01.2006")
}
