package place

import (
	"context"

	domain "clubplan/internal/domain/place"
)

// Store persists Place state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Place, error)
	GetByTitle(ctx context.Context, title string) (domain.Place, error)
	Save(ctx context.Context, value domain.Place) error
	List(ctx context.Context) ([]domain.Place, error)
}
