package place

import (
	"context"
	"database/sql"

	"clubplan/internal/adapters/storage"
	domain "clubplan/internal/domain/place"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new place store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Place by its ID.
// PRE: id is non-empty
// POST: Returns the entity or ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Place, error) {
	return s.getOne(ctx, "SELECT id, title FROM place WHERE id = ?", id)
}

// GetByTitle retrieves a Place by its exact title. Used by the
// find-or-create flow on the event form.
// PRE: title is non-empty
// POST: Returns the entity or ErrNotFound
func (s *SQLiteStore) GetByTitle(ctx context.Context, title string) (domain.Place, error) {
	return s.getOne(ctx, "SELECT id, title FROM place WHERE title = ?", title)
}

// Save persists a Place to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Place) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO place (id, title) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET title=excluded.title",
		entity.ID, entity.Title)
	return err
}

// List retrieves all places sorted by title.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Place, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title FROM place ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Place
	for rows.Next() {
		var entity domain.Place
		if err := rows.Scan(&entity.ID, &entity.Title); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func (s *SQLiteStore) getOne(ctx context.Context, query string, arg any) (domain.Place, error) {
	row := s.db.QueryRowContext(ctx, query, arg)
	var entity domain.Place
	err := row.Scan(&entity.ID, &entity.Title)
	if err == sql.ErrNoRows {
		return domain.Place{}, domain.ErrNotFound
	}
	return entity, err
}
