package projections

import (
	"context"
	"errors"
	"fmt"
	"time"

	jobtypeDomain "clubplan/internal/domain/jobtype"
	placeDomain "clubplan/internal/domain/place"
	scheduleDomain "clubplan/internal/domain/schedule"
	entryDomain "clubplan/internal/domain/scheduleentry"
)

// ErrTemplateNotFound is returned for a non-zero template id that doesn't resolve.
var ErrTemplateNotFound = errors.New("template not found")

// CreateFormPlaceStore defines the store interface needed by this projection.
type CreateFormPlaceStore interface {
	List(ctx context.Context) ([]placeDomain.Place, error)
}

// CreateFormScheduleStore defines the store interface needed by this projection.
type CreateFormScheduleStore interface {
	GetByID(ctx context.Context, id string) (scheduleDomain.Schedule, error)
	ListTemplates(ctx context.Context) ([]scheduleDomain.Schedule, error)
}

// CreateFormEntryStore defines the store interface needed by this projection.
type CreateFormEntryStore interface {
	ListByScheduleID(ctx context.Context, scheduleID string) ([]entryDomain.Entry, error)
}

// CreateFormJobTypeStore defines the store interface needed by this projection.
type CreateFormJobTypeStore interface {
	GetByID(ctx context.Context, id string) (jobtypeDomain.JobType, error)
	ListActive(ctx context.Context) ([]jobtypeDomain.JobType, error)
}

// GetCreateFormQuery carries query parameters. Zero date parts default to
// today; an empty TemplateID means no template.
type GetCreateFormQuery struct {
	Year       int
	Month      int
	Day        int
	TemplateID string
}

// GetCreateFormDeps holds dependencies for the projection.
type GetCreateFormDeps struct {
	PlaceStore    CreateFormPlaceStore
	ScheduleStore CreateFormScheduleStore
	EntryStore    CreateFormEntryStore
	JobTypeStore  CreateFormJobTypeStore
	Now           func() time.Time // nil = time.Now
}

// TemplateSlot is one prefilled roster slot from the chosen template.
type TemplateSlot struct {
	JobTypeID    string
	JobTypeTitle string
	Position     int
}

// GetCreateFormResult carries everything the creation form renders.
type GetCreateFormResult struct {
	Date           string // DD-MM-YYYY for the form's date inputs
	PlaceTitles    []string
	Templates      []scheduleDomain.Schedule
	JobTypes       []jobtypeDomain.JobType
	ActiveTemplate string // display name of the chosen template, empty = none
	TemplateSlots  []TemplateSlot
}

// QueryGetCreateForm assembles the event creation form data.
// PRE: none; missing query parts get defaults
// POST: Returns lookup lists sorted by title; ErrTemplateNotFound for a
// non-empty TemplateID that doesn't resolve
func QueryGetCreateForm(ctx context.Context, query GetCreateFormQuery, deps GetCreateFormDeps) (GetCreateFormResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	today := now()

	year, month, day := query.Year, query.Month, query.Day
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
	}
	if day == 0 {
		day = today.Day()
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())

	result := GetCreateFormResult{
		Date: date.Format("02-01-2006"),
	}

	places, err := deps.PlaceStore.List(ctx)
	if err != nil {
		return GetCreateFormResult{}, fmt.Errorf("list places: %w", err)
	}
	for _, p := range places {
		result.PlaceTitles = append(result.PlaceTitles, p.Title)
	}

	result.Templates, err = deps.ScheduleStore.ListTemplates(ctx)
	if err != nil {
		return GetCreateFormResult{}, fmt.Errorf("list templates: %w", err)
	}

	result.JobTypes, err = deps.JobTypeStore.ListActive(ctx)
	if err != nil {
		return GetCreateFormResult{}, fmt.Errorf("list job types: %w", err)
	}

	if query.TemplateID != "" {
		template, err := deps.ScheduleStore.GetByID(ctx, query.TemplateID)
		if err != nil {
			return GetCreateFormResult{}, ErrTemplateNotFound
		}
		result.ActiveTemplate = template.Title

		entries, err := deps.EntryStore.ListByScheduleID(ctx, template.ID)
		if err != nil {
			return GetCreateFormResult{}, fmt.Errorf("list template entries: %w", err)
		}
		for _, e := range entries {
			slot := TemplateSlot{JobTypeID: e.JobTypeID, Position: e.Position}
			if jt, err := deps.JobTypeStore.GetByID(ctx, e.JobTypeID); err == nil {
				slot.JobTypeTitle = jt.Title
			}
			result.TemplateSlots = append(result.TemplateSlots, slot)
		}
	}

	return result, nil
}
