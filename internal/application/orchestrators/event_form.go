package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clubplan/internal/domain/clubevent"
	placeDomain "clubplan/internal/domain/place"
)

// EventForm carries the typed fields of the event creation form. JobTypeIDs
// and Amounts are parallel arrays: one roster slot group per job type, with
// Amounts[i] shifts each.
type EventForm struct {
	Title          string
	Subtitle       string
	PublicInfo     string
	PrivateDetails string
	Type           int
	Place          string // venue title, find-or-create
	BeginDate      string // DD-MM-YYYY as submitted, empty = today
	EndDate        string
	BeginTime      string // HH:MM, empty = 00:00
	EndTime        string
	IsPrivate      string // legacy polarity: "1" = make public, anything else = private
	Password       string
	PasswordDouble string
	SaveAsTemplate bool
	TemplateID     string
	JobTypeIDs     []string
	Amounts        []int
}

// PlaceStoreForForm defines the store interface needed by field assembly.
type PlaceStoreForForm interface {
	GetByTitle(ctx context.Context, title string) (placeDomain.Place, error)
	Save(ctx context.Context, p placeDomain.Place) error
}

// BuildEventDeps holds dependencies for BuildEventFromForm.
type BuildEventDeps struct {
	PlaceStore PlaceStoreForForm
	Location   *time.Location   // zone for date parsing, nil = time.Local
	Now        func() time.Time // nil = time.Now
	GenerateID func() string    // for on-demand place creation
}

// formDateLayouts are the date formats the form may submit.
var formDateLayouts = []string{"02-01-2006", "2006-01-02"}

// BuildEventFromForm assembles an Event from form fields. When existing is
// nil a fresh event is built; otherwise the existing event's scalar fields
// are overwritten. The venue is found or created by title. Blank dates
// default to today in the configured zone, blank times to midnight. The
// visibility field keeps its inherited polarity: a submitted "1" means the
// event goes public; everything else, absent included, keeps it private.
// POST: Returns the assembled event; nothing is persisted except an
// on-demand place row
func BuildEventFromForm(ctx context.Context, existing *clubevent.Event, form EventForm, deps BuildEventDeps) (clubevent.Event, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}

	var event clubevent.Event
	if existing != nil {
		event = *existing
	}

	event.Title = form.Title
	event.Subtitle = form.Subtitle
	event.PublicInfo = form.PublicInfo
	event.PrivateDetails = form.PrivateDetails
	event.Type = form.Type

	placeID, err := findOrCreatePlace(ctx, form.Place, deps)
	if err != nil {
		return clubevent.Event{}, err
	}
	event.PlaceID = placeID

	today := now().In(loc).Format(clubevent.DateLayout)
	event.StartDate, err = normalizeDate(form.BeginDate, today, loc)
	if err != nil {
		return clubevent.Event{}, fmt.Errorf("begin date: %w", err)
	}
	// A blank end date closes the event on its begin date; falling back to
	// today would put the end before a future begin.
	event.EndDate, err = normalizeDate(form.EndDate, event.StartDate, loc)
	if err != nil {
		return clubevent.Event{}, fmt.Errorf("end date: %w", err)
	}

	event.StartTime = normalizeTime(form.BeginTime)
	event.EndTime = normalizeTime(form.EndTime)

	event.Private = form.IsPrivate != "1"

	return event, nil
}

func findOrCreatePlace(ctx context.Context, title string, deps BuildEventDeps) (string, error) {
	existing, err := deps.PlaceStore.GetByTitle(ctx, title)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, placeDomain.ErrNotFound) {
		return "", fmt.Errorf("look up place %q: %w", title, err)
	}

	created := placeDomain.Place{ID: deps.GenerateID(), Title: title}
	if err := created.Validate(); err != nil {
		return "", err
	}
	if err := deps.PlaceStore.Save(ctx, created); err != nil {
		return "", fmt.Errorf("create place %q: %w", title, err)
	}
	return created.ID, nil
}

func normalizeDate(value, fallback string, loc *time.Location) (string, error) {
	if value == "" {
		return fallback, nil
	}
	for _, layout := range formDateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed.Format(clubevent.DateLayout), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q", value)
}

func normalizeTime(value string) string {
	if value == "" {
		return "00:00"
	}
	if _, err := time.Parse(clubevent.TimeLayout, value); err != nil {
		return "00:00"
	}
	return value
}
