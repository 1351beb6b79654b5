package place

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrNotFound   = errors.New("place not found")
	ErrEmptyTitle = errors.New("place title cannot be empty")
)

// Place is a venue an event happens at. Places are created on demand the
// first time a title is used on the event form.
type Place struct {
	ID    string
	Title string
}

// Validate checks the place's invariants.
func (p *Place) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
