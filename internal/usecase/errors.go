package usecase

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a required key is missing or malformed.
// The write endpoint degrades it to a silent no-op; every other surface
// reports it.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnauthenticated is returned when no actor can be resolved and anonymous
// reactions are disabled.
var ErrUnauthenticated = errors.New("login required to react")

// ErrNotAllowed is returned when the content item is missing, unpublished, or
// its type is outside the configured allow-list.
var ErrNotAllowed = errors.New("reactions not allowed for this content")

// InvalidTypeError is returned when the requested reaction type is not in the
// configured set. It carries the content id for caller diagnostics.
type InvalidTypeError struct {
	ContentID string
	Type      string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("reaction type %q not defined (content %s)", e.Type, e.ContentID)
}
