package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"clubplan/internal/domain/clubevent"
)

// EventStoreForDelete defines the store interface needed by DeleteEvent.
type EventStoreForDelete interface {
	GetByID(ctx context.Context, id string) (clubevent.Event, error)
	DeleteCascade(ctx context.Context, eventID string) error
}

// DeleteEventInput carries input for the orchestrator.
type DeleteEventInput struct {
	EventID string
	Actor   Actor
}

// DeleteEventDeps holds dependencies for DeleteEvent.
type DeleteEventDeps struct {
	EventStore EventStoreForDelete
}

// ExecuteDeleteEvent removes an event with its schedule and entries.
// The group check (marketing or clubleitung) happens at the HTTP layer;
// a missing event surfaces as clubevent.ErrNotFound for the handler's
// "doesn't exist" flash.
// POST: Event, schedule, and all entries are gone, or nothing changed
func ExecuteDeleteEvent(ctx context.Context, input DeleteEventInput, deps DeleteEventDeps) error {
	event, err := deps.EventStore.GetByID(ctx, input.EventID)
	if err != nil {
		return err
	}

	slog.Info("event_deleted",
		"event_id", event.ID,
		"title", event.Title,
		"actor_id", input.Actor.ID,
		"actor_name", input.Actor.Name,
		"actor_group", input.Actor.Group)

	if err := deps.EventStore.DeleteCascade(ctx, event.ID); err != nil {
		return fmt.Errorf("delete event %s: %w", event.ID, err)
	}
	return nil
}
