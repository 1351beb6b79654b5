package projections

import (
	"context"
	"fmt"
	"time"

	"clubplan/internal/application/cache"
	clubDomain "clubplan/internal/domain/club"
	"clubplan/internal/domain/clubevent"
	jobtypeDomain "clubplan/internal/domain/jobtype"
	personDomain "clubplan/internal/domain/person"
	placeDomain "clubplan/internal/domain/place"
	scheduleDomain "clubplan/internal/domain/schedule"
	entryDomain "clubplan/internal/domain/scheduleentry"
)

// personsCacheKey memoizes the eligible-person dropdown list; the detail
// page is hot and the list changes rarely.
const personsCacheKey = "personsForDropdown"

// personsCacheTTL bounds dropdown staleness.
const personsCacheTTL = 10 * time.Minute

// EventDetailEventStore defines the store interface needed by this projection.
type EventDetailEventStore interface {
	GetByID(ctx context.Context, id string) (clubevent.Event, error)
}

// EventDetailPlaceStore defines the store interface needed by this projection.
type EventDetailPlaceStore interface {
	GetByID(ctx context.Context, id string) (placeDomain.Place, error)
}

// EventDetailScheduleStore defines the store interface needed by this projection.
type EventDetailScheduleStore interface {
	GetByEventID(ctx context.Context, eventID string) (scheduleDomain.Schedule, error)
}

// EventDetailEntryStore defines the store interface needed by this projection.
type EventDetailEntryStore interface {
	ListByScheduleID(ctx context.Context, scheduleID string) ([]entryDomain.Entry, error)
}

// EventDetailJobTypeStore defines the store interface needed by this projection.
type EventDetailJobTypeStore interface {
	GetByID(ctx context.Context, id string) (jobtypeDomain.JobType, error)
}

// EventDetailPersonStore defines the store interface needed by this projection.
type EventDetailPersonStore interface {
	GetByID(ctx context.Context, id string) (personDomain.Person, error)
	ListEligible(ctx context.Context, updatedSince time.Time) ([]personDomain.Person, error)
}

// EventDetailClubStore defines the store interface needed by this projection.
type EventDetailClubStore interface {
	List(ctx context.Context) ([]clubDomain.Club, error)
}

// GetEventDetailQuery carries query parameters.
type GetEventDetailQuery struct {
	EventID string
}

// GetEventDetailDeps holds dependencies for the projection.
type GetEventDetailDeps struct {
	EventStore    EventDetailEventStore
	PlaceStore    EventDetailPlaceStore
	ScheduleStore EventDetailScheduleStore
	EntryStore    EventDetailEntryStore
	JobTypeStore  EventDetailJobTypeStore
	PersonStore   EventDetailPersonStore
	ClubStore     EventDetailClubStore
	Cache         *cache.Cache     // optional: nil loads persons every time
	Now           func() time.Time // nil = time.Now
}

// RosterRow is one shift slot resolved for display.
type RosterRow struct {
	EntryID      string
	JobTypeTitle string
	PersonID     string
	PersonName   string // empty = open shift
	PersonClub   string
	Position     int
}

// GetEventDetailResult carries the event detail view data. Revisions have
// the client IP already cleared; the raw log never reaches a template.
type GetEventDetailResult struct {
	Event      clubevent.Event
	PlaceTitle string
	Schedule   scheduleDomain.Schedule
	Roster     []RosterRow
	ClubTitles map[string]string // club id -> title
	Persons    []personDomain.Person
	Revisions  []scheduleDomain.Revision
}

// QueryGetEventDetail loads an event with its roster, lookup lists, and
// redacted revision history. Visibility enforcement is the caller's job;
// the result carries the Private flag it needs.
// PRE: EventID is non-empty
// POST: Returns the detail view data or clubevent.ErrNotFound
func QueryGetEventDetail(ctx context.Context, query GetEventDetailQuery, deps GetEventDetailDeps) (GetEventDetailResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	event, err := deps.EventStore.GetByID(ctx, query.EventID)
	if err != nil {
		return GetEventDetailResult{}, err
	}
	result := GetEventDetailResult{Event: event}

	if place, err := deps.PlaceStore.GetByID(ctx, event.PlaceID); err == nil {
		result.PlaceTitle = place.Title
	}

	result.Schedule, err = deps.ScheduleStore.GetByEventID(ctx, event.ID)
	if err != nil {
		return GetEventDetailResult{}, fmt.Errorf("load schedule for event %s: %w", event.ID, err)
	}
	result.Revisions = result.Schedule.RedactedRevisions()

	entries, err := deps.EntryStore.ListByScheduleID(ctx, result.Schedule.ID)
	if err != nil {
		return GetEventDetailResult{}, fmt.Errorf("load entries: %w", err)
	}

	clubs, err := deps.ClubStore.List(ctx)
	if err != nil {
		return GetEventDetailResult{}, fmt.Errorf("list clubs: %w", err)
	}
	result.ClubTitles = make(map[string]string, len(clubs))
	for _, c := range clubs {
		result.ClubTitles[c.ID] = c.Title
	}

	for _, e := range entries {
		row := RosterRow{EntryID: e.ID, PersonID: e.PersonID, Position: e.Position}
		if jt, err := deps.JobTypeStore.GetByID(ctx, e.JobTypeID); err == nil {
			row.JobTypeTitle = jt.Title
		}
		if e.IsAssigned() {
			if p, err := deps.PersonStore.GetByID(ctx, e.PersonID); err == nil {
				row.PersonName = p.Name
				row.PersonClub = result.ClubTitles[p.ClubID]
			}
		}
		result.Roster = append(result.Roster, row)
	}

	result.Persons, err = eligiblePersons(ctx, deps, now())
	if err != nil {
		return GetEventDetailResult{}, fmt.Errorf("load persons: %w", err)
	}

	return result, nil
}

func eligiblePersons(ctx context.Context, deps GetEventDetailDeps, now time.Time) ([]personDomain.Person, error) {
	load := func() (any, error) {
		return deps.PersonStore.ListEligible(ctx, now.AddDate(0, -3, 0))
	}
	if deps.Cache == nil {
		value, err := load()
		if err != nil {
			return nil, err
		}
		return value.([]personDomain.Person), nil
	}
	value, err := deps.Cache.Remember(personsCacheKey, personsCacheTTL, load)
	if err != nil {
		return nil, err
	}
	return value.([]personDomain.Person), nil
}
