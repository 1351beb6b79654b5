package jobtype

import (
	"context"

	domain "clubplan/internal/domain/jobtype"
)

// Store persists JobType state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.JobType, error)
	Save(ctx context.Context, value domain.JobType) error
	List(ctx context.Context) ([]domain.JobType, error)
	ListActive(ctx context.Context) ([]domain.JobType, error)
}
