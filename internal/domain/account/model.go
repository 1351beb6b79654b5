package account

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MaxEmailLength bounds user-supplied email addresses.
const MaxEmailLength = 254

// User group constants. Marketing and Clubleitung manage events; everyone
// else only views them and takes shifts.
const (
	GroupMarketing   = "marketing"
	GroupClubleitung = "clubleitung"
	GroupMitglied    = "mitglied"
)

// ValidGroups contains all valid group values.
var ValidGroups = []string{GroupMarketing, GroupClubleitung, GroupMitglied}

// Domain errors
var (
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("email must contain '@'")
	ErrEmptyName        = errors.New("account name cannot be empty")
	ErrInvalidGroup     = errors.New("group must be one of: marketing, clubleitung, mitglied")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")
	ErrWrongPassword    = errors.New("incorrect password")
)

// Account is a login identity. ClubTitle is denormalized for display next to
// the user's name in revision logs and rosters.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Group        string
	ClubTitle    string
	CreatedAt    time.Time
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if len(a.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if !isValidGroup(a.Group) {
		return ErrInvalidGroup
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty and >= 12 characters
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < 12 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: Account fields are not mutated
func (a *Account) CheckPassword(plaintext string) error {
	if a.PasswordHash == "" {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// CanManageEvents reports whether the account may create and delete events.
func (a *Account) CanManageEvents() bool {
	return a.Group == GroupMarketing || a.Group == GroupClubleitung
}

func isValidGroup(group string) bool {
	for _, g := range ValidGroups {
		if g == group {
			return true
		}
	}
	return false
}
