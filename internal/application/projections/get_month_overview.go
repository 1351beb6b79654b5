package projections

import (
	"context"
	"fmt"
	"time"

	"clubplan/internal/domain/clubevent"
	placeDomain "clubplan/internal/domain/place"
)

// MonthOverviewEventStore defines the store interface needed by this projection.
type MonthOverviewEventStore interface {
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]clubevent.Event, error)
}

// MonthOverviewPlaceStore defines the store interface needed by this projection.
type MonthOverviewPlaceStore interface {
	List(ctx context.Context) ([]placeDomain.Place, error)
}

// GetMonthOverviewQuery carries query parameters. Zero year/month default
// to the current month.
type GetMonthOverviewQuery struct {
	Year          int
	Month         int
	Authenticated bool // false hides private events
}

// GetMonthOverviewDeps holds dependencies for the projection.
type GetMonthOverviewDeps struct {
	EventStore MonthOverviewEventStore
	PlaceStore MonthOverviewPlaceStore
	Now        func() time.Time // nil = time.Now
}

// MonthEvent is one calendar row.
type MonthEvent struct {
	Event      clubevent.Event
	PlaceTitle string
}

// GetMonthOverviewResult carries the month view data.
type GetMonthOverviewResult struct {
	Year      int
	Month     int
	MonthName string // German month name
	Events    []MonthEvent
	PrevYear  int
	PrevMonth int
	NextYear  int
	NextMonth int
}

// germanMonthNames indexes January as 1.
var germanMonthNames = [13]string{"", "Januar", "Februar", "März", "April", "Mai",
	"Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"}

// QueryGetMonthOverview lists a month's events ordered by start date.
// Private events are dropped for anonymous requests.
// PRE: Month is 0 or 1..12
// POST: Returns the month's visible events with prev/next navigation
func QueryGetMonthOverview(ctx context.Context, query GetMonthOverviewQuery, deps GetMonthOverviewDeps) (GetMonthOverviewResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	today := now()

	year, month := query.Year, query.Month
	if year == 0 {
		year = today.Year()
	}
	if month < 1 || month > 12 {
		month = int(today.Month())
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	events, err := deps.EventStore.ListByDateRange(ctx,
		first.Format(clubevent.DateLayout), last.Format(clubevent.DateLayout))
	if err != nil {
		return GetMonthOverviewResult{}, fmt.Errorf("list events: %w", err)
	}

	placeTitles := make(map[string]string)
	if places, err := deps.PlaceStore.List(ctx); err == nil {
		for _, p := range places {
			placeTitles[p.ID] = p.Title
		}
	}

	result := GetMonthOverviewResult{
		Year:      year,
		Month:     month,
		MonthName: germanMonthNames[month],
	}
	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	result.PrevYear, result.PrevMonth = prev.Year(), int(prev.Month())
	result.NextYear, result.NextMonth = next.Year(), int(next.Month())

	for _, e := range events {
		if e.Private && !query.Authenticated {
			continue
		}
		result.Events = append(result.Events, MonthEvent{
			Event:      e,
			PlaceTitle: placeTitles[e.PlaceID],
		})
	}
	return result, nil
}
