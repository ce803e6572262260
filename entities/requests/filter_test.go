package requests

import (
	"api/schemas"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func requestAt(name, phone, status string, createdAt time.Time) schemas.Request {
	return schemas.Request{
		FullName:  name,
		Phone:     phone,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestFilterByText(t *testing.T) {
	now := time.Now()
	collection := []schemas.Request{
		requestAt("Попков Фёдор", "375445551111", schemas.REQUEST_STATUS_NEW, now),
		requestAt("Минин Илья", "375291112222", schemas.REQUEST_STATUS_NEW, now),
	}

	matched := Filter{Text: "555"}.Apply(collection)
	require.Len(t, matched, 1)
	require.Equal(t, "375445551111", matched[0].Phone)
}

func TestFilterTextMatchesNameCaseInsensitive(t *testing.T) {
	now := time.Now()
	collection := []schemas.Request{
		requestAt("Попков Фёдор", "375445551111", schemas.REQUEST_STATUS_NEW, now),
	}

	require.Len(t, Filter{Text: "попков"}.Apply(collection), 1)
	require.Len(t, Filter{Text: "нет такого"}.Apply(collection), 0)
	// Empty text matches everything.
	require.Len(t, Filter{}.Apply(collection), 1)
}

func TestFilterByStatus(t *testing.T) {
	now := time.Now()
	collection := []schemas.Request{
		requestAt("a", "1", schemas.REQUEST_STATUS_NEW, now),
		requestAt("b", "2", schemas.REQUEST_STATUS_ACCEPTED, now),
		requestAt("c", "3", schemas.REQUEST_STATUS_REJECTED, now),
	}

	require.Len(t, Filter{Status: schemas.REQUEST_STATUS_ACCEPTED}.Apply(collection), 1)
	require.Len(t, Filter{Status: "all"}.Apply(collection), 3)
}

func TestFilterByCompanyFlexible(t *testing.T) {
	now := time.Now()
	byID := requestAt("a", "1", schemas.REQUEST_STATUS_ACCEPTED, now)
	byID.CompanyID = "664f1b2a9c"
	legacyByName := requestAt("b", "2", schemas.REQUEST_STATUS_ACCEPTED, now)
	legacyByName.CompanyID = "Green"
	other := requestAt("c", "3", schemas.REQUEST_STATUS_ACCEPTED, now)
	other.CompanyID = "Black Box"

	collection := []schemas.Request{byID, legacyByName, other}

	matched := Filter{Company: CompanyRef{ID: "664f1b2a9c", Name: "Green"}}.Apply(collection)
	require.Len(t, matched, 2)

	require.Len(t, Filter{Company: ByID("664f1b2a9c")}.Apply(collection), 1)
	require.Len(t, Filter{Company: ByName("green")}.Apply(collection), 1)
}

func TestFilterByDateRangeInclusive(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 6, 12, 0, 0, 0, 0, time.Local)

	collection := []schemas.Request{
		requestAt("before", "1", schemas.REQUEST_STATUS_NEW, from.Add(-time.Second)),
		requestAt("start", "2", schemas.REQUEST_STATUS_NEW, from),
		requestAt("end", "3", schemas.REQUEST_STATUS_NEW, to),
		requestAt("after", "4", schemas.REQUEST_STATUS_NEW, to.Add(time.Second)),
	}

	matched := Filter{From: from, To: to}.Apply(collection)
	require.Len(t, matched, 2)
}

func TestFilterOrdersNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local)
	collection := []schemas.Request{
		requestAt("old", "1", schemas.REQUEST_STATUS_NEW, base),
		requestAt("newest", "2", schemas.REQUEST_STATUS_NEW, base.Add(2*time.Hour)),
		requestAt("middle", "3", schemas.REQUEST_STATUS_NEW, base.Add(time.Hour)),
	}

	matched := Filter{}.Apply(collection)
	require.Equal(t, "newest", matched[0].FullName)
	require.Equal(t, "middle", matched[1].FullName)
	require.Equal(t, "old", matched[2].FullName)
}

func TestGroupByDay(t *testing.T) {
	now := time.Date(2025, 6, 12, 15, 0, 0, 0, time.Local)
	today := now.Add(-time.Hour)
	yesterday := now.AddDate(0, 0, -1)
	older := now.AddDate(0, 0, -5)

	collection := []schemas.Request{
		requestAt("older", "1", schemas.REQUEST_STATUS_NEW, older),
		requestAt("today-early", "2", schemas.REQUEST_STATUS_NEW, today.Add(-2*time.Hour)),
		requestAt("today-late", "3", schemas.REQUEST_STATUS_NEW, today),
		requestAt("yesterday", "4", schemas.REQUEST_STATUS_NEW, yesterday),
	}

	groups := GroupByDay(collection, now)
	require.Len(t, groups, 3)

	require.Equal(t, "Сегодня", groups[0].Label)
	require.Len(t, groups[0].Requests, 2)
	require.Equal(t, "today-late", groups[0].Requests[0].FullName)

	require.Equal(t, "Вчера", groups[1].Label)
	require.Equal(t, "07.06.2025", groups[2].Label)
}
