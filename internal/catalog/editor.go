package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// AdminContributor is credited on entries created from the admin surface.
	AdminContributor = "Admin"

	// DateLayout is the added-date display format (DD/MM/YYYY).
	DateLayout = "02/01/2006"

	// DefaultImageURL illustrates resources created by hand.
	DefaultImageURL = "https://images.unsplash.com/photo-1551288049-bbda38a594a0?auto=format&fit=crop&q=80&w=600"

	// ImportedImageURL illustrates resources created by a CSV import.
	ImportedImageURL = "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=600"

	newResourceTitle       = "New Resource"
	newResourceDescription = "Enter description..."
	newResourceURL         = "https://"
	newResourceDomain      = "NEW.COM"

	newCollectionName        = "New Category"
	newCollectionIcon        = "📁"
	newCollectionSubCategory = "General"
	customCollectionPrefix   = "custom-"
)

// Editor applies admin operations to a working copy.
//
// Operations never mutate their input: they return a fresh copy, or the
// input unchanged together with an error when the call is rejected.
type Editor struct {
	now   func() time.Time
	newID func() string
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock overrides the time source used for added dates.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// WithIDSource overrides identifier generation.
func WithIDSource(newID func() string) Option {
	return func(e *Editor) { e.newID = newID }
}

// NewEditor creates an editor using the wall clock and random identifiers.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{
		now:   time.Now,
		newID: RandomID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Today returns the current added-date string.
func (e *Editor) Today() string {
	return e.now().Format(DateLayout)
}

// NewID returns a fresh resource identifier.
func (e *Editor) NewID() string {
	return e.newID()
}

// RandomID returns a 9 character lower-case token.
func RandomID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

// Direction is a reordering step.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts up/down, and left/right as their horizontal aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "left":
		return Up, nil
	case "down", "right":
		return Down, nil
	default:
		return "", ErrUnknownDirection
	}
}

// swapTarget returns the neighbour index for a move, and false at either
// boundary or for an index outside [0, n).
func swapTarget(index, n int, dir Direction) (int, bool) {
	if index < 0 || index >= n {
		return 0, false
	}
	target := index + 1
	if dir == Up {
		target = index - 1
	}
	if target < 0 || target >= n {
		return 0, false
	}
	return target, true
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
