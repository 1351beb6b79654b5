package person

import (
	"context"
	"database/sql"
	"time"

	"clubplan/internal/adapters/storage"
	domain "clubplan/internal/domain/person"
)

const updatedAtLayout = "2006-01-02T15:04:05.999999999Z07:00"

const personColumns = "id, ldap_id, name, status, club_id, updated_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new person store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Person by its ID.
// PRE: id is non-empty
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Person, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+personColumns+" FROM person WHERE id = ?", id)
	entity, err := scanPerson(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Person{}, domain.ErrNotFound
	}
	return entity, err
}

// Save persists a Person to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Person) error {
	var ldapID, clubID any
	if entity.LdapID != "" {
		ldapID = entity.LdapID
	}
	if entity.ClubID != "" {
		clubID = entity.ClubID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO person (`+personColumns+`) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET ldap_id=excluded.ldap_id, name=excluded.name,
		   status=excluded.status, club_id=excluded.club_id, updated_at=excluded.updated_at`,
		entity.ID, ldapID, entity.Name, entity.Status, clubID, entity.UpdatedAt.Format(updatedAtLayout))
	return err
}

// List retrieves all persons ordered by club and name.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Person, error) {
	return s.queryPersons(ctx, "SELECT "+personColumns+" FROM person ORDER BY club_id, name")
}

// ListEligible retrieves persons for the shift assignment dropdown: directory
// account required, status aktiv/kandidat or record touched after
// updatedSince. Ordered by club, then name, like the legacy dropdown.
// PRE: updatedSince is set
// POST: Returns matching persons
func (s *SQLiteStore) ListEligible(ctx context.Context, updatedSince time.Time) ([]domain.Person, error) {
	return s.queryPersons(ctx,
		`SELECT `+personColumns+` FROM person
		 WHERE ldap_id IS NOT NULL AND (status IN (?, ?) OR updated_at >= ?)
		 ORDER BY club_id, name`,
		domain.StatusActive, domain.StatusCandidate, updatedSince.Format(updatedAtLayout))
}

func (s *SQLiteStore) queryPersons(ctx context.Context, query string, args ...any) ([]domain.Person, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Person
	for rows.Next() {
		entity, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanPerson(scan func(dest ...any) error) (domain.Person, error) {
	var entity domain.Person
	var ldapID, clubID sql.NullString
	var updatedAt string
	err := scan(&entity.ID, &ldapID, &entity.Name, &entity.Status, &clubID, &updatedAt)
	if err != nil {
		return domain.Person{}, err
	}
	entity.LdapID = ldapID.String
	entity.ClubID = clubID.String
	if ts, parseErr := time.Parse(updatedAtLayout, updatedAt); parseErr == nil {
		entity.UpdatedAt = ts
	}
	return entity, nil
}
