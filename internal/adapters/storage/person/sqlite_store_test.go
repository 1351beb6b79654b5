package person

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"clubplan/internal/adapters/storage"
	domain "clubplan/internal/domain/person"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	// Every pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	if _, err := db.Exec("INSERT INTO club (id, title) VALUES ('club-1', 'bc-Club')"); err != nil {
		t.Fatalf("failed to seed club: %v", err)
	}
	return db
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	db := openTestDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	want := domain.Person{
		ID:        "person-1",
		LdapID:    "anna",
		Name:      "Anna",
		Status:    domain.StatusActive,
		ClubID:    "club-1",
		UpdatedAt: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, "person-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSQLiteStore_GetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	store := NewSQLiteStore(db)

	_, err := store.GetByID(context.Background(), "no-such-person")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
