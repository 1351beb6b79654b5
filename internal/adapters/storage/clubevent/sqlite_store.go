package clubevent

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"clubplan/internal/adapters/storage"
	domain "clubplan/internal/domain/clubevent"
	scheduleDomain "clubplan/internal/domain/schedule"
	entryDomain "clubplan/internal/domain/scheduleentry"
)

const createdAtLayout = "2006-01-02T15:04:05.999999999Z07:00"

const eventColumns = "id, title, subtitle, public_info, private_details, type, place_id, start_date, end_date, start_time, end_time, private, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new event store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Event by its ID.
// PRE: id is non-empty
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Event, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM club_event WHERE id = ?", id)
	entity, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Event{}, domain.ErrNotFound
	}
	return entity, err
}

// Save persists an Event to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO club_event (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title=excluded.title, subtitle=excluded.subtitle,
		   public_info=excluded.public_info, private_details=excluded.private_details,
		   type=excluded.type, place_id=excluded.place_id, start_date=excluded.start_date,
		   end_date=excluded.end_date, start_time=excluded.start_time, end_time=excluded.end_time,
		   private=excluded.private`,
		entity.ID, entity.Title, entity.Subtitle, entity.PublicInfo, entity.PrivateDetails,
		entity.Type, entity.PlaceID, entity.StartDate, entity.EndDate, entity.StartTime,
		entity.EndTime, boolToInt(entity.Private), entity.CreatedAt.Format(createdAtLayout))
	return err
}

// List retrieves all Events ordered by start date.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Event, error) {
	return s.queryEvents(ctx, "SELECT "+eventColumns+" FROM club_event ORDER BY start_date, start_time")
}

// ListByDateRange retrieves Events whose start date falls inside the given
// inclusive range (dates in YYYY-MM-DD).
// PRE: startDate <= endDate
// POST: Returns matching events ordered by start date and time
func (s *SQLiteStore) ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Event, error) {
	return s.queryEvents(ctx,
		"SELECT "+eventColumns+" FROM club_event WHERE start_date >= ? AND start_date <= ? ORDER BY start_date, start_time",
		startDate, endDate)
}

// CreateWithSchedule inserts an event, its schedule, and all entries in one
// transaction.
// PRE: event, sched, and entries have been validated; sched.EventID == event.ID
// POST: Either everything is persisted or nothing is
func (s *SQLiteStore) CreateWithSchedule(ctx context.Context, event domain.Event, sched scheduleDomain.Schedule, entries []entryDomain.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create event tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO club_event ("+eventColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		event.ID, event.Title, event.Subtitle, event.PublicInfo, event.PrivateDetails,
		event.Type, event.PlaceID, event.StartDate, event.EndDate, event.StartTime,
		event.EndTime, boolToInt(event.Private), event.CreatedAt.Format(createdAtLayout))
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	revisions, err := json.Marshal(sched.Revisions)
	if err != nil {
		return fmt.Errorf("marshal revisions: %w", err)
	}
	var dueDate any
	if sched.DueDate != "" {
		dueDate = sched.DueDate
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO schedule (id, event_id, title, due_date, is_template, revisions) VALUES (?, ?, ?, ?, ?, ?)",
		sched.ID, sched.EventID, sched.Title, dueDate, boolToInt(sched.IsTemplate), string(revisions))
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}

	for _, e := range entries {
		var personID any
		if e.PersonID != "" {
			personID = e.PersonID
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO schedule_entry (id, schedule_id, job_type_id, person_id, position) VALUES (?, ?, ?, ?, ?)",
			e.ID, e.ScheduleID, e.JobTypeID, personID, e.Position)
		if err != nil {
			return fmt.Errorf("insert entry %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// DeleteCascade removes an event together with its schedule and entries in
// one transaction. Deletion order (entries, then schedule, then event) is
// dictated by the foreign key constraints.
// PRE: eventID is non-empty
// POST: The event and all dependent rows are gone, or nothing changed
func (s *SQLiteStore) DeleteCascade(ctx context.Context, eventID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete event tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM schedule_entry WHERE schedule_id IN (SELECT id FROM schedule WHERE event_id = ?)", eventID); err != nil {
		return fmt.Errorf("delete entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM schedule WHERE event_id = ?", eventID); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM club_event WHERE id = ?", eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) queryEvents(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Event
	for rows.Next() {
		entity, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanEvent(scan func(dest ...any) error) (domain.Event, error) {
	var e domain.Event
	var private int
	var createdAt string
	err := scan(&e.ID, &e.Title, &e.Subtitle, &e.PublicInfo, &e.PrivateDetails, &e.Type,
		&e.PlaceID, &e.StartDate, &e.EndDate, &e.StartTime, &e.EndTime, &private, &createdAt)
	if err != nil {
		return domain.Event{}, err
	}
	e.Private = private != 0
	if ts, parseErr := time.Parse(createdAtLayout, createdAt); parseErr == nil {
		e.CreatedAt = ts
	}
	return e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
