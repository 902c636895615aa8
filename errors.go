package framebuf

import (
	"errors"
	"fmt"
)

// Errors returned by the video surface.
var (
	// ErrNotInitialized is returned when a Video was not created by Init.
	ErrNotInitialized = errors.New("framebuf: not initialized")

	// ErrClosed is returned by operations on a Video after End.
	ErrClosed = errors.New("framebuf: video surface closed")

	// ErrOutOfBounds is matched by *OutOfBoundsError.
	ErrOutOfBounds = errors.New("framebuf: coordinates out of bounds")

	// ErrInvalidRect is returned by FillRect for negative sizes.
	ErrInvalidRect = errors.New("framebuf: invalid rectangle")

	// ErrInvalidOption is returned by Init for unusable options.
	ErrInvalidOption = errors.New("framebuf: invalid option")

	// ErrInvalidColor is returned by ParseHex.
	ErrInvalidColor = errors.New("framebuf: invalid color")
)

// OutOfBoundsError reports a pixel address outside the surface.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("framebuf: pixel (%d, %d) outside %dx%d surface", e.X, e.Y, e.Width, e.Height)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
