package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	emailAdapter "clubplan/internal/adapters/email"
	"clubplan/internal/domain/clubevent"
	jobtypeDomain "clubplan/internal/domain/jobtype"
	scheduleDomain "clubplan/internal/domain/schedule"
	entryDomain "clubplan/internal/domain/scheduleentry"
)

// ErrPasswordMismatch is returned when the two creation password fields differ.
var ErrPasswordMismatch = errors.New("creation passwords do not match")

// Actor is the identity acting on an event, taken from the session. A zero
// Actor is an anonymous guest.
type Actor struct {
	ID    string
	Name  string
	Group string
	Club  string
}

// RevisionUserName formats the actor for the revision log: "Name(Club)",
// or the guest label when there is no session.
func (a Actor) RevisionUserName() string {
	if a.ID == "" {
		return scheduleDomain.GuestName
	}
	return a.Name + "(" + a.Club + ")"
}

// EventStoreForCreate defines the store interface needed by CreateEvent.
type EventStoreForCreate interface {
	CreateWithSchedule(ctx context.Context, event clubevent.Event, sched scheduleDomain.Schedule, entries []entryDomain.Entry) error
}

// JobTypeStoreForCreate defines the store interface needed by CreateEvent.
type JobTypeStoreForCreate interface {
	GetByID(ctx context.Context, id string) (jobtypeDomain.JobType, error)
}

// CreateEventInput carries input for the orchestrator.
type CreateEventInput struct {
	Form     EventForm
	Actor    Actor
	ClientIP string
}

// CreateEventDeps holds dependencies for CreateEvent.
type CreateEventDeps struct {
	EventStore   EventStoreForCreate
	JobTypeStore JobTypeStoreForCreate
	PlaceStore   PlaceStoreForForm
	EmailSender  emailAdapter.Sender // optional: nil skips notification
	NotifyTo     string              // leadership address for notifications
	Location     *time.Location
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteCreateEvent creates an event with its schedule and roster in one
// transaction.
// PRE: form passwords match, job type ids resolve
// POST: Event, schedule (null due date, genesis revision), and one entry per
// requested slot persisted together; one "shift created" revision per entry,
// so the final log holds N+1 revisions; nothing persisted on any failure
// except an on-demand place row
func ExecuteCreateEvent(ctx context.Context, input CreateEventInput, deps CreateEventDeps) (clubevent.Event, error) {
	if input.Form.Password != input.Form.PasswordDouble {
		return clubevent.Event{}, ErrPasswordMismatch
	}

	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	event, err := BuildEventFromForm(ctx, nil, input.Form, BuildEventDeps{
		PlaceStore: deps.PlaceStore,
		Location:   deps.Location,
		Now:        now,
		GenerateID: deps.GenerateID,
	})
	if err != nil {
		return clubevent.Event{}, err
	}
	event.ID = deps.GenerateID()
	event.CreatedAt = now()
	if err := event.Validate(); err != nil {
		return clubevent.Event{}, err
	}

	timestamp := now().Format(scheduleDomain.RevisionTimeLayout)
	sched := scheduleDomain.Schedule{
		ID:      deps.GenerateID(),
		EventID: event.ID,
	}
	if input.Form.SaveAsTemplate {
		sched.IsTemplate = true
		sched.Title = event.Title
	}
	sched.AppendRevision(scheduleDomain.Revision{
		Action:    scheduleDomain.ActionScheduleCreated,
		UserID:    input.Actor.ID,
		UserName:  input.Actor.RevisionUserName(),
		FromIP:    input.ClientIP,
		Timestamp: timestamp,
	})

	entries, err := generateEntries(ctx, &sched, input, deps, timestamp)
	if err != nil {
		return clubevent.Event{}, err
	}

	if err := deps.EventStore.CreateWithSchedule(ctx, event, sched, entries); err != nil {
		return clubevent.Event{}, fmt.Errorf("persist event: %w", err)
	}

	slog.Info("event_created",
		"event_id", event.ID,
		"title", event.Title,
		"actor_id", input.Actor.ID,
		"actor_name", input.Actor.Name,
		"actor_group", input.Actor.Group,
		"shifts", len(entries))

	notifyEventCreated(ctx, event, deps)

	return event, nil
}

// generateEntries materializes the roster slots: Amounts[i] entries for
// JobTypeIDs[i], positions numbered in insertion order, one revision each.
func generateEntries(ctx context.Context, sched *scheduleDomain.Schedule, input CreateEventInput, deps CreateEventDeps, timestamp string) ([]entryDomain.Entry, error) {
	if len(input.Form.JobTypeIDs) != len(input.Form.Amounts) {
		return nil, errors.New("job type and amount lists differ in length")
	}

	var entries []entryDomain.Entry
	position := 0
	for i, jobTypeID := range input.Form.JobTypeIDs {
		jt, err := deps.JobTypeStore.GetByID(ctx, jobTypeID)
		if err != nil {
			return nil, fmt.Errorf("resolve job type %s: %w", jobTypeID, err)
		}
		for n := 0; n < input.Form.Amounts[i]; n++ {
			entry := entryDomain.Entry{
				ID:         deps.GenerateID(),
				ScheduleID: sched.ID,
				JobTypeID:  jt.ID,
				Position:   position,
			}
			if err := entry.Validate(); err != nil {
				return nil, err
			}
			entries = append(entries, entry)
			sched.AppendRevision(scheduleDomain.Revision{
				EntryID:   entry.ID,
				JobType:   jt.Title,
				Action:    scheduleDomain.ActionShiftCreated,
				UserID:    input.Actor.ID,
				UserName:  input.Actor.RevisionUserName(),
				FromIP:    input.ClientIP,
				Timestamp: timestamp,
			})
			position++
		}
	}
	return entries, nil
}

// notifyEventCreated sends a best-effort notification to the leadership
// address. Failures are logged, never surfaced.
func notifyEventCreated(ctx context.Context, event clubevent.Event, deps CreateEventDeps) {
	if deps.EmailSender == nil || deps.NotifyTo == "" {
		return
	}
	_, err := deps.EmailSender.Send(ctx, emailAdapter.SendRequest{
		To:      []string{deps.NotifyTo},
		Subject: "Neue Veranstaltung: " + event.Title,
		HTML: fmt.Sprintf("<p>Die Veranstaltung <strong>%s</strong> am %s wurde angelegt.</p>",
			event.Title, event.StartDate),
	})
	if err != nil {
		slog.Warn("event_notification_failed", "event_id", event.ID, "error", err)
	}
}
