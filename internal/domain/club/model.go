package club

import (
	"errors"
	"strings"
)

// ErrEmptyTitle is returned when a club has no title.
var ErrEmptyTitle = errors.New("club title cannot be empty")

// Club is one of the member clubs sharing the venue. Reference data: looked
// up for display, never owned by an event.
type Club struct {
	ID    string
	Title string
}

// Validate checks the club's invariants.
func (c *Club) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
