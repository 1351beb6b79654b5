package person

import (
	"errors"
	"strings"
	"time"
)

// Member status constants, German like the rest of the member records.
const (
	StatusActive    = "aktiv"
	StatusCandidate = "kandidat"
	StatusVeteran   = "veteran"
	StatusFormer    = "ehemalig"
)

// ValidStatuses contains all valid status values.
var ValidStatuses = []string{StatusActive, StatusCandidate, StatusVeteran, StatusFormer}

// Domain errors
var (
	ErrNotFound      = errors.New("person not found")
	ErrEmptyName     = errors.New("person name cannot be empty")
	ErrInvalidStatus = errors.New("person status must be one of: aktiv, kandidat, veteran, ehemalig")
)

// Person is a club member who can be assigned to shifts. LdapID links the
// person to the club directory; people without one cannot log in and never
// appear in assignment dropdowns.
type Person struct {
	ID        string
	LdapID    string // empty = no directory account
	Name      string
	Status    string
	ClubID    string
	UpdatedAt time.Time
}

// Validate checks the person's invariants.
// PRE: none
// POST: returns nil if valid, error otherwise
func (p *Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if !isValidStatus(p.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// EligibleForRoster reports whether the person appears in shift assignment
// dropdowns: they need a directory account, and must either be an active or
// candidate member or have had their record touched within the last three
// months.
func (p *Person) EligibleForRoster(now time.Time) bool {
	if p.LdapID == "" {
		return false
	}
	if p.Status == StatusActive || p.Status == StatusCandidate {
		return true
	}
	return p.UpdatedAt.After(now.AddDate(0, -3, 0))
}

func isValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
