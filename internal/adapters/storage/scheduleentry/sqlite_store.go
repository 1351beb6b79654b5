package scheduleentry

import (
	"context"
	"database/sql"

	"clubplan/internal/adapters/storage"
	domain "clubplan/internal/domain/scheduleentry"
)

const entryColumns = "id, schedule_id, job_type_id, person_id, position"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new schedule entry store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Entry by its ID.
// PRE: id is non-empty
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Entry, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM schedule_entry WHERE id = ?", id)
	entity, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Entry{}, domain.ErrNotFound
	}
	return entity, err
}

// Save persists an Entry to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Entry) error {
	var personID any
	if entity.PersonID != "" {
		personID = entity.PersonID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO schedule_entry (`+entryColumns+`) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET schedule_id=excluded.schedule_id,
		   job_type_id=excluded.job_type_id, person_id=excluded.person_id, position=excluded.position`,
		entity.ID, entity.ScheduleID, entity.JobTypeID, personID, entity.Position)
	return err
}

// Delete removes an Entry from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM schedule_entry WHERE id = ?", id)
	return err
}

// ListByScheduleID retrieves all entries of a schedule in insertion order.
// PRE: scheduleID is non-empty
// POST: Returns entries ordered by position
func (s *SQLiteStore) ListByScheduleID(ctx context.Context, scheduleID string) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM schedule_entry WHERE schedule_id = ? ORDER BY position", scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Entry
	for rows.Next() {
		entity, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanEntry(scan func(dest ...any) error) (domain.Entry, error) {
	var entity domain.Entry
	var personID sql.NullString
	err := scan(&entity.ID, &entity.ScheduleID, &entity.JobTypeID, &personID, &entity.Position)
	if err != nil {
		return domain.Entry{}, err
	}
	entity.PersonID = personID.String
	return entity, nil
}
