package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "clubplan/internal/adapters/email"
	web "clubplan/internal/adapters/http"
	"clubplan/internal/adapters/http/perf"
	"clubplan/internal/adapters/storage"
	accountStore "clubplan/internal/adapters/storage/account"
	clubStore "clubplan/internal/adapters/storage/club"
	clubeventStore "clubplan/internal/adapters/storage/clubevent"
	jobtypeStore "clubplan/internal/adapters/storage/jobtype"
	personStore "clubplan/internal/adapters/storage/person"
	placeStore "clubplan/internal/adapters/storage/place"
	scheduleStore "clubplan/internal/adapters/storage/schedule"
	scheduleentryStore "clubplan/internal/adapters/storage/scheduleentry"
	"clubplan/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	dbPath := envOrDefault("CLUBPLAN_DB", "clubplan.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		slog.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		slog.Error("database unreachable", "error", err)
		os.Exit(1)
	}
	if err := storage.InitDB(db); err != nil {
		slog.Error("init database schema", "error", err)
		os.Exit(1)
	}

	// Performance instrumentation: wrap the DB with timing, feed a collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	clubs := clubStore.NewSQLiteStore(timedDB)
	jobTypes := jobtypeStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:  acctStore,
		EventStore:    clubeventStore.NewSQLiteStore(timedDB),
		ScheduleStore: scheduleStore.NewSQLiteStore(timedDB),
		EntryStore:    scheduleentryStore.NewSQLiteStore(timedDB),
		JobTypeStore:  jobTypes,
		PersonStore:   personStore.NewSQLiteStore(timedDB),
		ClubStore:     clubs,
		PlaceStore:    placeStore.NewSQLiteStore(timedDB),
	}

	// Seed reference data and, when configured, the admin account
	err = orchestrators.ExecuteSeed(context.Background(), orchestrators.SeedDeps{
		AccountStore:  acctStore,
		ClubStore:     clubs,
		JobTypeStore:  jobTypes,
		AdminEmail:    os.Getenv("CLUBPLAN_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("CLUBPLAN_ADMIN_PASSWORD"),
	})
	if err != nil {
		slog.Error("seed", "error", err)
		os.Exit(1)
	}

	// Email notifications for newly created events
	notifyTo := os.Getenv("CLUBPLAN_NOTIFY_EMAIL")
	emailFrom := envOrDefault("CLUBPLAN_RESEND_FROM", "Clubplan <noreply@example.org>")
	if resendKey := os.Getenv("CLUBPLAN_RESEND_KEY"); resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), notifyTo)
		slog.Info("email sender configured", "kind", "resend")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), notifyTo)
		if os.Getenv("CLUBPLAN_ENV") == "production" {
			slog.Warn("CLUBPLAN_RESEND_KEY is not set, email delivery is disabled in production")
		} else {
			slog.Info("email sender configured", "kind", "noop")
		}
	}

	mux := web.NewMux("static", stores, collector)

	addr := envOrDefault("CLUBPLAN_ADDR", ":8080")
	slog.Info("clubplan starting", "version", version, "addr", addr, "env", envOrDefault("CLUBPLAN_ENV", "development"))
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
