package bitfont

import (
	"fmt"

	"golang.org/x/text/width"
)

// GlyphSize is the width and height of a glyph in pixels.
const GlyphSize = 8

// Glyph is an 8x8 bitmap. Rows run top to bottom; within a row bit 7 is
// the leftmost column.
type Glyph [GlyphSize]byte

// Bit reports whether the pixel at (col, row) is set. Coordinates
// outside the glyph are unset.
func (g Glyph) Bit(col, row int) bool {
	if col < 0 || col >= GlyphSize || row < 0 || row >= GlyphSize {
		return false
	}
	return g[row]&(0x80>>uint(col)) != 0
}

// Empty reports whether no pixel is set.
func (g Glyph) Empty() bool {
	return g == Glyph{}
}

// Font is a dense table of glyphs for consecutive code points.
type Font struct {
	first  rune
	glyphs []Glyph
}

var msx = mustNew(' ', msxData[:])

// Default returns the built-in MSX character set covering ' ' through
// DEL (0x7F).
func Default() *Font {
	return msx
}

// New builds a font from data, eight bytes per glyph, where the first
// glyph is for code point first. data is copied.
func New(first rune, data []byte) (*Font, error) {
	if first < 0 {
		return nil, fmt.Errorf("%w: negative first code point %d", ErrInvalidTable, first)
	}
	if len(data) == 0 || len(data)%GlyphSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of glyphs", ErrInvalidTable, len(data))
	}
	glyphs := make([]Glyph, len(data)/GlyphSize)
	for i := range glyphs {
		copy(glyphs[i][:], data[i*GlyphSize:])
	}
	return &Font{first: first, glyphs: glyphs}, nil
}

func mustNew(first rune, data []byte) *Font {
	f, err := New(first, data)
	if err != nil {
		panic(err)
	}
	return f
}

// First returns the first code point in the table.
func (f *Font) First() rune { return f.first }

// Last returns the last code point in the table.
func (f *Font) Last() rune { return f.first + rune(len(f.glyphs)) - 1 }

// Len returns the number of glyphs.
func (f *Font) Len() int { return len(f.glyphs) }

// Lookup returns the glyph for r. Full-width forms such as U+FF21 are
// looked up as their ASCII equivalent. Characters outside the table
// return ErrNoGlyph.
func (f *Font) Lookup(r rune) (Glyph, error) {
	if g, ok := f.lookup(r); ok {
		return g, nil
	}
	if n := width.LookupRune(r).Narrow(); n != 0 {
		if g, ok := f.lookup(n); ok {
			return g, nil
		}
	}
	return Glyph{}, fmt.Errorf("%w: %U", ErrNoGlyph, r)
}

// Has reports whether Lookup would succeed for r.
func (f *Font) Has(r rune) bool {
	_, err := f.Lookup(r)
	return err == nil
}

func (f *Font) lookup(r rune) (Glyph, bool) {
	i := r - f.first
	if i < 0 || int(i) >= len(f.glyphs) {
		return Glyph{}, false
	}
	return f.glyphs[i], true
}
