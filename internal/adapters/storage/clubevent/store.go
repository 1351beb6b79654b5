package clubevent

import (
	"context"

	domain "clubplan/internal/domain/clubevent"
	scheduleDomain "clubplan/internal/domain/schedule"
	entryDomain "clubplan/internal/domain/scheduleentry"
)

// Store persists ClubEvent state. CreateWithSchedule and DeleteCascade are
// the aggregate operations: each runs in a single transaction so an event
// can never exist half-built or half-deleted.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Event, error)
	Save(ctx context.Context, value domain.Event) error
	List(ctx context.Context) ([]domain.Event, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Event, error)
	CreateWithSchedule(ctx context.Context, event domain.Event, sched scheduleDomain.Schedule, entries []entryDomain.Entry) error
	DeleteCascade(ctx context.Context, eventID string) error
}
