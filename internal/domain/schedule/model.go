package schedule

import (
	"errors"
	"strings"
)

// Revision action labels, German like the rest of the UI. The values are
// stored verbatim in the revision log, so they must not change between
// releases.
const (
	ActionScheduleCreated = "Dienstplan erstellt"
	ActionShiftCreated    = "Dienst erstellt"
	ActionShiftChanged    = "Dienst geändert"
)

// GuestName is recorded as the acting user on revisions made without a session.
const GuestName = "Gast"

// RevisionTimeLayout is the timestamp format inside revision log entries.
const RevisionTimeLayout = "2006-01-02 15:04:05"

// Domain errors
var (
	ErrNotFound     = errors.New("schedule not found")
	ErrEmptyEventID = errors.New("schedule event ID cannot be empty")
)

// Revision is one element of a schedule's append-only revision log.
// The JSON keys (spaces included) match the legacy log format; existing
// persisted logs must keep decoding.
type Revision struct {
	EntryID   string `json:"entry id"`
	JobType   string `json:"job type"`
	Action    string `json:"action"`
	OldID     string `json:"old id"`
	OldValue  string `json:"old value"`
	NewID     string `json:"new id"`
	NewValue  string `json:"new value"`
	UserID    string `json:"user id"`
	UserName  string `json:"user name"`
	FromIP    string `json:"from ip"`
	Timestamp string `json:"timestamp"`
}

// Schedule is the shift roster container for one event. A schedule flagged
// as template can seed the entries of new schedules; its Title is the
// template's display name.
type Schedule struct {
	ID         string
	EventID    string
	Title      string
	DueDate    string // YYYY-MM-DD, empty = no due date
	IsTemplate bool
	Revisions  []Revision
}

// Validate checks the schedule's invariants.
// PRE: none
// POST: returns nil if valid, error otherwise
func (s *Schedule) Validate() error {
	if strings.TrimSpace(s.EventID) == "" {
		return ErrEmptyEventID
	}
	return nil
}

// AppendRevision adds a revision to the end of the log. The log is
// append-only: nothing ever rewrites or removes earlier entries.
func (s *Schedule) AppendRevision(r Revision) {
	s.Revisions = append(s.Revisions, r)
}

// RedactedRevisions returns a copy of the revision log with the client IP
// cleared on every entry. The persisted log keeps the IPs; they must never
// reach a rendered page.
func (s *Schedule) RedactedRevisions() []Revision {
	out := make([]Revision, len(s.Revisions))
	for i, r := range s.Revisions {
		r.FromIP = ""
		out[i] = r
	}
	return out
}
