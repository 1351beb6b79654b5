package club

import (
	"context"
	"database/sql"
	"fmt"

	"clubplan/internal/adapters/storage"
	domain "clubplan/internal/domain/club"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new club store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Club by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Club, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, title FROM club WHERE id = ?", id)
	var entity domain.Club
	err := row.Scan(&entity.ID, &entity.Title)
	if err == sql.ErrNoRows {
		return domain.Club{}, fmt.Errorf("club not found: %w", err)
	}
	return entity, err
}

// Save persists a Club to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Club) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO club (id, title) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET title=excluded.title",
		entity.ID, entity.Title)
	return err
}

// List retrieves all clubs sorted by title.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Club, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title FROM club ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Club
	for rows.Next() {
		var entity domain.Club
		if err := rows.Scan(&entity.ID, &entity.Title); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the number of clubs.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM club").Scan(&n)
	return n, err
}
