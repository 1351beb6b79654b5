package clubevent

import (
	"errors"
	"strings"
	"time"
)

// Event type codes, matching the legacy evnt_type column.
const (
	TypeConcert = 0
	TypeParty   = 1
	TypeRental  = 2
	TypeMeeting = 3
	TypeSpecial = 4
)

// TypeLabels maps event type codes to their German UI labels.
var TypeLabels = map[int]string{
	TypeConcert: "Konzert",
	TypeParty:   "Party",
	TypeRental:  "Vermietung",
	TypeMeeting: "Sitzung",
	TypeSpecial: "Sonderveranstaltung",
}

// Max length constants for user-editable fields.
const (
	MaxTitleLength    = 200
	MaxSubtitleLength = 200
	MaxInfoLength     = 5000
)

// Date and time layouts used on Event fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Domain errors
var (
	ErrNotFound        = errors.New("event not found")
	ErrEmptyTitle      = errors.New("event title cannot be empty")
	ErrTitleTooLong    = errors.New("event title cannot exceed 200 characters")
	ErrEmptyPlace      = errors.New("event place cannot be empty")
	ErrDatesOutOfOrder = errors.New("event end date cannot be before start date")
)

// Event represents one scheduled club activity. PublicInfo is shown to
// everyone; PrivateDetails only to logged-in members. Private events are
// hidden from anonymous visitors entirely.
type Event struct {
	ID             string
	Title          string
	Subtitle       string
	PublicInfo     string // markdown
	PrivateDetails string
	Type           int
	PlaceID        string
	StartDate      string // YYYY-MM-DD
	EndDate        string // YYYY-MM-DD
	StartTime      string // HH:MM
	EndTime        string // HH:MM
	Private        bool   // true = visible to logged-in members only
	CreatedAt      time.Time
}

// Validate checks the event's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if len(e.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if len(e.Subtitle) > MaxSubtitleLength {
		return errors.New("event subtitle cannot exceed 200 characters")
	}
	if len(e.PublicInfo) > MaxInfoLength || len(e.PrivateDetails) > MaxInfoLength {
		return errors.New("event description cannot exceed 5000 characters")
	}
	if strings.TrimSpace(e.PlaceID) == "" {
		return ErrEmptyPlace
	}
	if e.StartDate != "" && e.EndDate != "" && e.EndDate < e.StartDate {
		return ErrDatesOutOfOrder
	}
	return nil
}

// TypeLabel returns the German label for the event's type code.
// Unknown codes fall back to the special-event label.
func (e Event) TypeLabel() string {
	if label, ok := TypeLabels[e.Type]; ok {
		return label
	}
	return TypeLabels[TypeSpecial]
}

// IsMultiDay returns true if the event spans more than one calendar day.
func (e Event) IsMultiDay() bool {
	return e.EndDate != "" && e.EndDate != e.StartDate
}
