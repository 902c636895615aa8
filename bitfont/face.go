package bitfont

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// baseline is the row the glyphs sit on; the last row holds descenders.
const baseline = 7

// Face adapts a Font to golang.org/x/image/font.Face. Glyphs are scaled
// by an integer factor with nearest-neighbour sampling, so a Face with
// scale 2 draws the same pixels as the framebuffer text renderer.
//
// Face is safe for concurrent use.
type Face struct {
	font  *Font
	scale int

	mu    sync.Mutex
	masks map[rune]*image.Alpha
}

// NewFace returns a face for f at the given integer scale.
func NewFace(f *Font, scale int) (*Face, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil font", ErrInvalidTable)
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}
	return &Face{font: f, scale: scale, masks: make(map[rune]*image.Alpha)}, nil
}

// Scale returns the integer scale factor.
func (f *Face) Scale() int { return f.scale }

// Close implements font.Face.
func (f *Face) Close() error { return nil }

// Glyph implements font.Face.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	m, ok := f.mask(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	size := GlyphSize * f.scale
	x := dot.X.Round()
	y := dot.Y.Round() - baseline*f.scale
	dr = image.Rect(x, y, x+size, y+size)
	return dr, m, image.Point{}, f.advance(), true
}

// GlyphBounds implements font.Face.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	if !f.font.Has(r) {
		return fixed.Rectangle26_6{}, 0, false
	}
	s := f.scale
	bounds = fixed.R(0, -baseline*s, GlyphSize*s, (GlyphSize-baseline)*s)
	return bounds, f.advance(), true
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if !f.font.Has(r) {
		return 0, false
	}
	return f.advance(), true
}

// Kern implements font.Face. The font is monospace.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics implements font.Face.
func (f *Face) Metrics() font.Metrics {
	s := f.scale
	return font.Metrics{
		Height:    fixed.I(GlyphSize * s),
		Ascent:    fixed.I(baseline * s),
		Descent:   fixed.I((GlyphSize - baseline) * s),
		XHeight:   fixed.I(5 * s),
		CapHeight: fixed.I(baseline * s),
	}
}

func (f *Face) advance() fixed.Int26_6 {
	return fixed.I(GlyphSize * f.scale)
}

// mask returns the scaled alpha mask for r, building it on first use.
func (f *Face) mask(r rune) (*image.Alpha, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok := f.masks[r]; ok {
		return m, true
	}
	g, err := f.font.Lookup(r)
	if err != nil {
		return nil, false
	}
	m := scaleGlyph(g, f.scale)
	f.masks[r] = m
	return m, true
}

// scaleGlyph renders g into an alpha mask of (8*scale)² pixels.
func scaleGlyph(g Glyph, scale int) *image.Alpha {
	src := image.NewAlpha(image.Rect(0, 0, GlyphSize, GlyphSize))
	for row := 0; row < GlyphSize; row++ {
		for col := 0; col < GlyphSize; col++ {
			if g.Bit(col, row) {
				src.SetAlpha(col, row, color.Alpha{A: 0xFF})
			}
		}
	}
	if scale == 1 {
		return src
	}
	size := GlyphSize * scale
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

var _ font.Face = (*Face)(nil)
