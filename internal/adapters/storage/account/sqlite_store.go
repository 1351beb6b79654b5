package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clubplan/internal/adapters/storage"
	domain "clubplan/internal/domain/account"
)

// ErrNotFound is returned when no account matches a lookup.
var ErrNotFound = errors.New("account not found")

const accountColumns = "id, email, name, password_hash, user_group, club_title, created_at"

const createdAtLayout = "2006-01-02T15:04:05.999999999Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new account store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Account by its ID.
// PRE: id is non-empty
// POST: Returns the entity or ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM account WHERE id = ?", id)
	return scanAccount(row.Scan)
}

// GetByEmail retrieves an Account by email.
// PRE: email is non-empty
// POST: Returns the entity or ErrNotFound
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM account WHERE email = ?", email)
	return scanAccount(row.Scan)
}

// Save persists an Account to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO account (id, email, name, password_hash, user_group, club_title, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email=excluded.email,
			name=excluded.name,
			password_hash=excluded.password_hash,
			user_group=excluded.user_group,
			club_title=excluded.club_title`,
		entity.ID,
		entity.Email,
		entity.Name,
		entity.PasswordHash,
		entity.Group,
		entity.ClubTitle,
		entity.CreatedAt.Format(createdAtLayout),
	)
	return err
}

// Count returns the number of accounts. Used by seeding to decide
// whether a first admin account is needed.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM account").Scan(&count)
	return count, err
}

func scanAccount(scan func(dest ...any) error) (domain.Account, error) {
	var entity domain.Account
	var createdAt string

	err := scan(
		&entity.ID,
		&entity.Email,
		&entity.Name,
		&entity.PasswordHash,
		&entity.Group,
		&entity.ClubTitle,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return domain.Account{}, ErrNotFound
	}
	if err != nil {
		return domain.Account{}, err
	}

	entity.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return domain.Account{}, err
	}
	return entity, nil
}
