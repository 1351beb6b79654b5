package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"clubplan/internal/domain/account"
)

// AccountStoreForLogin defines the store interface needed by Login.
type AccountStoreForLogin interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
}

// ErrInvalidCredentials is returned for any wrong email or password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	AccountID string
	Name      string
	Group     string
	ClubTitle string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore AccountStoreForLogin
}

// ExecuteLogin validates credentials and returns account info for session creation.
// PRE: email and password submitted
// POST: Returns account info on success; wrong email and wrong password are
// indistinguishable to the caller
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	acct, err := deps.AccountStore.GetByEmail(ctx, input.Email)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := acct.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "wrong_password")
		return LoginResult{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "email", input.Email, "group", acct.Group)

	return LoginResult{
		AccountID: acct.ID,
		Name:      acct.Name,
		Group:     acct.Group,
		ClubTitle: acct.ClubTitle,
	}, nil
}
