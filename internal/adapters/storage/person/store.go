package person

import (
	"context"
	"time"

	domain "clubplan/internal/domain/person"
)

// Store persists Person state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Person, error)
	Save(ctx context.Context, value domain.Person) error
	List(ctx context.Context) ([]domain.Person, error)
	ListEligible(ctx context.Context, updatedSince time.Time) ([]domain.Person, error)
}
