package scheduleentry

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrNotFound         = errors.New("schedule entry not found")
	ErrEmptyScheduleID  = errors.New("entry schedule ID cannot be empty")
	ErrEmptyJobTypeID   = errors.New("entry job type ID cannot be empty")
	ErrNegativePosition = errors.New("entry position cannot be negative")
)

// Entry is one shift slot within a schedule. PersonID is empty until
// someone takes or is assigned the shift.
type Entry struct {
	ID         string
	ScheduleID string
	JobTypeID  string
	PersonID   string // empty = unassigned
	Position   int    // insertion order within the schedule
}

// Validate checks the entry's invariants.
// PRE: none
// POST: returns nil if valid, error otherwise
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.ScheduleID) == "" {
		return ErrEmptyScheduleID
	}
	if strings.TrimSpace(e.JobTypeID) == "" {
		return ErrEmptyJobTypeID
	}
	if e.Position < 0 {
		return ErrNegativePosition
	}
	return nil
}

// IsAssigned returns true if a person holds this shift.
func (e *Entry) IsAssigned() bool {
	return e.PersonID != ""
}
