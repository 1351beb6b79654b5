package scheduleentry

import (
	"context"

	domain "clubplan/internal/domain/scheduleentry"
)

// Store persists ScheduleEntry state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Entry, error)
	Save(ctx context.Context, value domain.Entry) error
	Delete(ctx context.Context, id string) error
	ListByScheduleID(ctx context.Context, scheduleID string) ([]domain.Entry, error)
}
