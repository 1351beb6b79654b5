package projections

import (
	"context"
	"testing"
	"time"

	"clubplan/internal/domain/clubevent"
	placeDomain "clubplan/internal/domain/place"
)

type mockMonthEventStore struct {
	events []clubevent.Event
}

func (m *mockMonthEventStore) ListByDateRange(_ context.Context, startDate, endDate string) ([]clubevent.Event, error) {
	var out []clubevent.Event
	for _, e := range m.events {
		if e.StartDate >= startDate && e.StartDate <= endDate {
			out = append(out, e)
		}
	}
	return out, nil
}

func monthDeps() GetMonthOverviewDeps {
	return GetMonthOverviewDeps{
		EventStore: &mockMonthEventStore{events: []clubevent.Event{
			{ID: "public-1", Title: "Konzert", StartDate: "2026-08-07", PlaceID: "place-1", Private: false},
			{ID: "private-1", Title: "Mitgliederversammlung", StartDate: "2026-08-14", Private: true},
			{ID: "other-month", Title: "Sommerfest", StartDate: "2026-07-04", Private: false},
		}},
		PlaceStore: &mockFormPlaceStore{places: []placeDomain.Place{
			{ID: "place-1", Title: "Clubhaus"},
		}},
		Now: func() time.Time { return time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC) },
	}
}

func TestQueryGetMonthOverview_DefaultsToCurrentMonth(t *testing.T) {
	got, err := QueryGetMonthOverview(context.Background(),
		GetMonthOverviewQuery{Authenticated: true}, monthDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year != 2026 || got.Month != 8 || got.MonthName != "August" {
		t.Errorf("unexpected month: %d-%d (%s)", got.Year, got.Month, got.MonthName)
	}
	if len(got.Events) != 2 {
		t.Errorf("expected 2 events in August, got %d", len(got.Events))
	}
}

func TestQueryGetMonthOverview_HidesPrivateForAnonymous(t *testing.T) {
	got, err := QueryGetMonthOverview(context.Background(),
		GetMonthOverviewQuery{Year: 2026, Month: 8}, monthDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Events) != 1 || got.Events[0].Event.ID != "public-1" {
		t.Errorf("expected only the public event, got %+v", got.Events)
	}
	if got.Events[0].PlaceTitle != "Clubhaus" {
		t.Errorf("expected place title join, got %q", got.Events[0].PlaceTitle)
	}
}

func TestQueryGetMonthOverview_Navigation(t *testing.T) {
	got, err := QueryGetMonthOverview(context.Background(),
		GetMonthOverviewQuery{Year: 2026, Month: 1}, monthDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PrevYear != 2025 || got.PrevMonth != 12 {
		t.Errorf("unexpected prev: %d-%d", got.PrevYear, got.PrevMonth)
	}
	if got.NextYear != 2026 || got.NextMonth != 2 {
		t.Errorf("unexpected next: %d-%d", got.NextYear, got.NextMonth)
	}
}
