package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"clubplan/internal/domain/account"
	clubDomain "clubplan/internal/domain/club"
	jobtypeDomain "clubplan/internal/domain/jobtype"

	"github.com/google/uuid"
)

// SeedDeps holds stores needed for startup seeding.
type SeedDeps struct {
	AccountStore  seedAccountStore
	ClubStore     seedClubStore
	JobTypeStore  seedJobTypeStore
	AdminEmail    string
	AdminPassword string
}

type seedAccountStore interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
	Count(ctx context.Context) (int, error)
}

type seedClubStore interface {
	Save(ctx context.Context, c clubDomain.Club) error
	Count(ctx context.Context) (int, error)
}

type seedJobTypeStore interface {
	Save(ctx context.Context, j jobtypeDomain.JobType) error
	List(ctx context.Context) ([]jobtypeDomain.JobType, error)
}

// defaultJobTypes are the shift kinds every fresh installation starts with.
var defaultJobTypes = []string{"Theke", "Eintritt", "Aufbau", "Abbau", "Putzdienst"}

// defaultClubs are seeded so person records have something to belong to.
var defaultClubs = []string{"bc-Club", "bc-Café"}

// ExecuteSeed prepares a fresh database: one admin account (clubleitung),
// default clubs, and default job types. Idempotent — existing rows are left
// alone, so it runs on every startup.
// PRE: schema is initialized
// POST: at least one account with event-management rights exists when
// AdminEmail and AdminPassword are configured
func ExecuteSeed(ctx context.Context, deps SeedDeps) error {
	if err := seedAdmin(ctx, deps); err != nil {
		return err
	}
	if err := seedClubs(ctx, deps); err != nil {
		return err
	}
	return seedJobTypes(ctx, deps)
}

func seedAdmin(ctx context.Context, deps SeedDeps) error {
	if deps.AdminEmail == "" || deps.AdminPassword == "" {
		count, err := deps.AccountStore.Count(ctx)
		if err != nil {
			return fmt.Errorf("count accounts: %w", err)
		}
		if count == 0 {
			slog.Warn("seed_skipped", "reason", "no admin credentials configured and no accounts exist")
		}
		return nil
	}

	if _, err := deps.AccountStore.GetByEmail(ctx, deps.AdminEmail); err == nil {
		return nil
	}

	admin := account.Account{
		ID:        uuid.New().String(),
		Email:     deps.AdminEmail,
		Name:      "Admin",
		Group:     account.GroupClubleitung,
		CreatedAt: time.Now(),
	}
	if err := admin.SetPassword(deps.AdminPassword); err != nil {
		return fmt.Errorf("seed admin: set password: %w", err)
	}
	if err := admin.Validate(); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := deps.AccountStore.Save(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: save: %w", err)
	}
	slog.Info("seed_event", "event", "admin_created", "email", deps.AdminEmail)
	return nil
}

func seedClubs(ctx context.Context, deps SeedDeps) error {
	count, err := deps.ClubStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("count clubs: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, title := range defaultClubs {
		c := clubDomain.Club{ID: uuid.New().String(), Title: title}
		if err := deps.ClubStore.Save(ctx, c); err != nil {
			return fmt.Errorf("seed club %q: %w", title, err)
		}
	}
	slog.Info("seed_event", "event", "clubs_created", "count", len(defaultClubs))
	return nil
}

func seedJobTypes(ctx context.Context, deps SeedDeps) error {
	existing, err := deps.JobTypeStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list job types: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, title := range defaultJobTypes {
		jt := jobtypeDomain.JobType{ID: uuid.New().String(), Title: title}
		if err := deps.JobTypeStore.Save(ctx, jt); err != nil {
			return fmt.Errorf("seed job type %q: %w", title, err)
		}
	}
	slog.Info("seed_event", "event", "job_types_created", "count", len(defaultJobTypes))
	return nil
}
