package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL DEFAULT '',
		user_group TEXT NOT NULL,
		club_title TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS club (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS place (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS job_type (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		archived INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS person (
		id TEXT PRIMARY KEY,
		ldap_id TEXT,
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		club_id TEXT,
		updated_at TEXT NOT NULL,
		FOREIGN KEY (club_id) REFERENCES club(id)
	);

	CREATE TABLE IF NOT EXISTS club_event (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		subtitle TEXT NOT NULL DEFAULT '',
		public_info TEXT NOT NULL DEFAULT '',
		private_details TEXT NOT NULL DEFAULT '',
		type INTEGER NOT NULL DEFAULT 0,
		place_id TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		start_time TEXT NOT NULL DEFAULT '00:00',
		end_time TEXT NOT NULL DEFAULT '00:00',
		private INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		FOREIGN KEY (place_id) REFERENCES place(id)
	);

	CREATE TABLE IF NOT EXISTS schedule (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		due_date TEXT,
		is_template INTEGER NOT NULL DEFAULT 0,
		revisions TEXT NOT NULL DEFAULT '[]',
		FOREIGN KEY (event_id) REFERENCES club_event(id)
	);

	CREATE TABLE IF NOT EXISTS schedule_entry (
		id TEXT PRIMARY KEY,
		schedule_id TEXT NOT NULL,
		job_type_id TEXT NOT NULL,
		person_id TEXT,
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (schedule_id) REFERENCES schedule(id),
		FOREIGN KEY (job_type_id) REFERENCES job_type(id),
		FOREIGN KEY (person_id) REFERENCES person(id)
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
