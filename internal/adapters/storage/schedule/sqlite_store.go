package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"clubplan/internal/adapters/storage"
	domain "clubplan/internal/domain/schedule"
)

const scheduleColumns = "id, event_id, title, due_date, is_template, revisions"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new schedule store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Schedule by its ID.
// PRE: id is non-empty
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Schedule, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+scheduleColumns+" FROM schedule WHERE id = ?", id)
	return scanSchedule(row.Scan)
}

// GetByEventID retrieves the schedule belonging to an event.
// PRE: eventID is non-empty
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByEventID(ctx context.Context, eventID string) (domain.Schedule, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+scheduleColumns+" FROM schedule WHERE event_id = ?", eventID)
	return scanSchedule(row.Scan)
}

// Save persists a Schedule to the database, revision log included.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Schedule) error {
	revisions, err := json.Marshal(entity.Revisions)
	if err != nil {
		return fmt.Errorf("marshal revisions: %w", err)
	}
	var dueDate any
	if entity.DueDate != "" {
		dueDate = entity.DueDate
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO schedule (`+scheduleColumns+`) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET event_id=excluded.event_id, title=excluded.title,
		   due_date=excluded.due_date, is_template=excluded.is_template, revisions=excluded.revisions`,
		entity.ID, entity.EventID, entity.Title, dueDate, boolToInt(entity.IsTemplate), string(revisions))
	return err
}

// Delete removes a Schedule from the database.
// PRE: id is non-empty; all entries of the schedule are already gone
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM schedule WHERE id = ?", id)
	return err
}

// ListTemplates retrieves all schedules flagged as templates, sorted by title.
func (s *SQLiteStore) ListTemplates(ctx context.Context) ([]domain.Schedule, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+scheduleColumns+" FROM schedule WHERE is_template = 1 ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Schedule
	for rows.Next() {
		entity, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanSchedule(scan func(dest ...any) error) (domain.Schedule, error) {
	var entity domain.Schedule
	var dueDate sql.NullString
	var isTemplate int
	var revisions string
	err := scan(&entity.ID, &entity.EventID, &entity.Title, &dueDate, &isTemplate, &revisions)
	if err == sql.ErrNoRows {
		return domain.Schedule{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Schedule{}, err
	}
	entity.DueDate = dueDate.String
	entity.IsTemplate = isTemplate != 0
	if revisions != "" {
		if err := json.Unmarshal([]byte(revisions), &entity.Revisions); err != nil {
			return domain.Schedule{}, fmt.Errorf("decode revisions for schedule %s: %w", entity.ID, err)
		}
	}
	return entity, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
