package bitfont

import "errors"

// Errors returned by the font table.
var (
	// ErrNoGlyph is returned for characters outside the table.
	ErrNoGlyph = errors.New("bitfont: no glyph for character")

	// ErrInvalidTable is returned by New for tables that are empty or
	// not a whole number of glyphs.
	ErrInvalidTable = errors.New("bitfont: invalid glyph table")

	// ErrInvalidScale is returned by NewFace for scales below one.
	ErrInvalidScale = errors.New("bitfont: scale must be at least 1")
)
