package framebuf

import (
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/framebuf/bitfont"
	"github.com/gogpu/framebuf/internal/pixbuf"
)

// Text layout constants.
const (
	// GlyphScale is the factor glyphs are enlarged by.
	GlyphScale = 2

	// CellSize is the advance of one character and the line height.
	CellSize = bitfont.GlyphSize * GlyphScale

	// TabWidth is the advance of a tab.
	TabWidth = 4 * CellSize

	// FormatBufferSize bounds DrawStringf output: at most
	// FormatBufferSize-1 bytes are drawn.
	FormatBufferSize = 256
)

// DrawChar draws ch with its top-left corner at (x, y). Every set glyph
// bit becomes a 2x2 block of c; unset bits are left alone. Pixels off the
// surface are clipped. Characters without a glyph return
// bitfont.ErrNoGlyph.
func (v *Video) DrawChar(x, y int, c Color, ch rune) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	buf, err := v.surface()
	if err != nil {
		return err
	}
	g, err := v.font.Lookup(ch)
	if err != nil {
		return err
	}
	drawGlyph(buf, x, y, c, g)
	return nil
}

// DrawString draws s starting at (x, y), advancing CellSize per
// character. '\n' returns to x on the next line, ' ' and '\t' advance by
// CellSize and TabWidth without drawing. A tab's advance starts after the
// previous character's cell, so "A\tB" puts 'B' at x+CellSize+TabWidth.
// Characters without a glyph advance one cell and draw nothing.
func (v *Video) DrawString(x, y int, c Color, s string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	buf, err := v.surface()
	if err != nil {
		return err
	}
	v.drawString(buf, x, y, c, s)
	return nil
}

// DrawStringf formats according to a format specifier and draws the
// result with DrawString. Output beyond FormatBufferSize-1 bytes is
// dropped without splitting a UTF-8 sequence. Formatting follows
// fmt.Sprintf unless WithLanguage chose a language, in which case numbers
// are localized for it.
func (v *Video) DrawStringf(x, y int, c Color, format string, args ...any) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	buf, err := v.surface()
	if err != nil {
		return err
	}
	var s string
	if v.lang == language.Und {
		s = fmt.Sprintf(format, args...)
	} else {
		s = message.NewPrinter(v.lang).Sprintf(format, args...)
	}
	v.drawString(buf, x, y, c, truncate(s, FormatBufferSize-1))
	return nil
}

func (v *Video) drawString(buf *pixbuf.Buffer, x, y int, c Color, s string) {
	cx, cy := x, y
	for _, r := range s {
		switch r {
		case '\n':
			cx = x
			cy = advance(cy, CellSize)
		case ' ':
			cx = advance(cx, CellSize)
		case '\t':
			cx = advance(cx, TabWidth)
		default:
			if g, err := v.font.Lookup(r); err == nil {
				drawGlyph(buf, cx, cy, c, g)
			}
			cx = advance(cx, CellSize)
		}
	}
}

// drawGlyph draws g scaled by GlyphScale with its top-left at (x, y).
// A cell starting at or past the surface edge draws nothing.
func drawGlyph(buf *pixbuf.Buffer, x, y int, c Color, g bitfont.Glyph) {
	if x >= buf.Width() || y >= buf.Height() || x <= -CellSize || y <= -CellSize {
		return
	}
	for row := 0; row < bitfont.GlyphSize; row++ {
		for col := 0; col < bitfont.GlyphSize; col++ {
			if !g.Bit(col, row) {
				continue
			}
			buf.FillRect(x+col*GlyphScale, y+row*GlyphScale, GlyphScale, GlyphScale, uint32(c))
		}
	}
}

// advance moves a cursor by d, saturating at the int range.
func advance(p, d int) int {
	if p > math.MaxInt-d {
		return math.MaxInt
	}
	return p + d
}

// truncate cuts s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
