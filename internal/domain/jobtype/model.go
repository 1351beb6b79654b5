package jobtype

import (
	"errors"
	"strings"
)

// ErrEmptyTitle is returned when a job type has no title.
var ErrEmptyTitle = errors.New("job type title cannot be empty")

// JobType is a kind of shift (bar, door, cleanup, ...). Archived job types
// stay referenced by old entries but are hidden from new rosters.
type JobType struct {
	ID       string
	Title    string
	Archived bool
}

// Validate checks the job type's invariants.
func (j *JobType) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
