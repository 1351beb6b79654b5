package jobtype

import (
	"context"
	"database/sql"
	"fmt"

	"clubplan/internal/adapters/storage"
	domain "clubplan/internal/domain/jobtype"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new job type store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a JobType by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.JobType, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, title, archived FROM job_type WHERE id = ?", id)
	var entity domain.JobType
	var archived int
	err := row.Scan(&entity.ID, &entity.Title, &archived)
	if err == sql.ErrNoRows {
		return domain.JobType{}, fmt.Errorf("job type not found: %w", err)
	}
	entity.Archived = archived != 0
	return entity, err
}

// Save persists a JobType to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.JobType) error {
	archived := 0
	if entity.Archived {
		archived = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO job_type (id, title, archived) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title=excluded.title, archived=excluded.archived`,
		entity.ID, entity.Title, archived)
	return err
}

// List retrieves all job types sorted by title.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.JobType, error) {
	return s.queryJobTypes(ctx, "SELECT id, title, archived FROM job_type ORDER BY title")
}

// ListActive retrieves all non-archived job types sorted by title.
func (s *SQLiteStore) ListActive(ctx context.Context) ([]domain.JobType, error) {
	return s.queryJobTypes(ctx, "SELECT id, title, archived FROM job_type WHERE archived = 0 ORDER BY title")
}

func (s *SQLiteStore) queryJobTypes(ctx context.Context, query string, args ...any) ([]domain.JobType, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.JobType
	for rows.Next() {
		var entity domain.JobType
		var archived int
		if err := rows.Scan(&entity.ID, &entity.Title, &archived); err != nil {
			return nil, err
		}
		entity.Archived = archived != 0
		results = append(results, entity)
	}
	return results, rows.Err()
}
