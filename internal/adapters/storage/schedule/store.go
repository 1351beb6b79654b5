package schedule

import (
	"context"

	domain "clubplan/internal/domain/schedule"
)

// Store persists Schedule state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Schedule, error)
	GetByEventID(ctx context.Context, eventID string) (domain.Schedule, error)
	Save(ctx context.Context, value domain.Schedule) error
	Delete(ctx context.Context, id string) error
	ListTemplates(ctx context.Context) ([]domain.Schedule, error)
}
