package club

import (
	"context"

	domain "clubplan/internal/domain/club"
)

// Store persists Club state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Club, error)
	Save(ctx context.Context, value domain.Club) error
	List(ctx context.Context) ([]domain.Club, error)
	Count(ctx context.Context) (int, error)
}
