package bitfont

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var glyphA = Glyph{0x20, 0x50, 0x88, 0x88, 0xF8, 0x88, 0x88, 0x00}

func TestDefaultRange(t *testing.T) {
	f := Default()
	if f.First() != ' ' {
		t.Errorf("First() = %q, want ' '", f.First())
	}
	if f.Last() != 0x7F {
		t.Errorf("Last() = %#x, want 0x7f", f.Last())
	}
	if f.Len() != 96 {
		t.Errorf("Len() = %d, want 96", f.Len())
	}

	for r := rune('!'); r < 0x7F; r++ {
		g, err := f.Lookup(r)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", r, err)
		}
		if g.Empty() {
			t.Errorf("glyph %q is empty", r)
		}
	}
	if g, _ := f.Lookup(' '); !g.Empty() {
		t.Error("space glyph should be empty")
	}
}

func TestLookup(t *testing.T) {
	f := Default()
	tests := []struct {
		name    string
		r       rune
		want    Glyph
		wantErr bool
	}{
		{"ascii", 'A', glyphA, false},
		{"full-width", 'Ａ', glyphA, false},
		{"control", 0x1F, Glyph{}, true},
		{"newline", '\n', Glyph{}, true},
		{"past table", 0x80, Glyph{}, true},
		{"latin-1", 'é', Glyph{}, true},
		{"negative", -1, Glyph{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := f.Lookup(tt.r)
			if tt.wantErr {
				if !errors.Is(err, ErrNoGlyph) {
					t.Errorf("Lookup(%U) error = %v, want ErrNoGlyph", tt.r, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%U) error = %v", tt.r, err)
			}
			if g != tt.want {
				t.Errorf("Lookup(%U) = % x, want % x", tt.r, g, tt.want)
			}
		})
	}
}

func TestGlyphBit(t *testing.T) {
	// Row 0 of 'A' is 0x20: only column 2 is set.
	for col := 0; col < GlyphSize; col++ {
		if got := glyphA.Bit(col, 0); got != (col == 2) {
			t.Errorf("Bit(%d, 0) = %v", col, got)
		}
	}
	// Row 4 is 0xF8: columns 0..4.
	for col := 0; col < GlyphSize; col++ {
		if got := glyphA.Bit(col, 4); got != (col < 5) {
			t.Errorf("Bit(%d, 4) = %v", col, got)
		}
	}
	if glyphA.Bit(-1, 0) || glyphA.Bit(0, 8) {
		t.Error("Bit outside the glyph should be false")
	}
}

func TestNew(t *testing.T) {
	data := make([]byte, 16)
	data[8] = 0xFF
	f, err := New('a', data)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if f.Last() != 'b' {
		t.Errorf("Last() = %q, want 'b'", f.Last())
	}
	g, err := f.Lookup('b')
	if err != nil || g[0] != 0xFF {
		t.Errorf("Lookup('b') = % x, %v", g, err)
	}
	data[8] = 0
	if g, _ := f.Lookup('b'); g[0] != 0xFF {
		t.Error("New should copy the table")
	}

	for _, bad := range [][]byte{nil, make([]byte, 7)} {
		if _, err := New(' ', bad); !errors.Is(err, ErrInvalidTable) {
			t.Errorf("New(%d bytes) error = %v, want ErrInvalidTable", len(bad), err)
		}
	}
	if _, err := New(-5, make([]byte, 8)); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("New(-5) error = %v", err)
	}
}

func TestNewFaceErrors(t *testing.T) {
	if _, err := NewFace(Default(), 0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("NewFace(scale 0) error = %v", err)
	}
	if _, err := NewFace(nil, 1); err == nil {
		t.Error("NewFace(nil) should fail")
	}
}

func TestFaceMaskMatchesDoubledGlyph(t *testing.T) {
	face, err := NewFace(Default(), 2)
	if err != nil {
		t.Fatal(err)
	}
	dot := fixed.P(10, 20)
	dr, mask, maskp, adv, ok := face.Glyph(dot, 'A')
	if !ok {
		t.Fatal("Glyph('A') not ok")
	}
	if want := image.Rect(10, 20-14, 26, 22); dr != want {
		t.Errorf("dr = %v, want %v", dr, want)
	}
	if adv != fixed.I(16) {
		t.Errorf("advance = %v, want 16", adv)
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			want := glyphA.Bit(x/2, y/2)
			if (a != 0) != want {
				t.Fatalf("mask(%d,%d) alpha = %d, want set=%v", x, y, a, want)
			}
		}
	}

	if _, _, _, _, ok := face.Glyph(dot, 'é'); ok {
		t.Error("Glyph('é') should not be ok")
	}
}

func TestFaceMetrics(t *testing.T) {
	face, err := NewFace(Default(), 2)
	if err != nil {
		t.Fatal(err)
	}
	m := face.Metrics()
	if m.Height != fixed.I(16) || m.Ascent+m.Descent != fixed.I(16) {
		t.Errorf("Metrics() = %+v", m)
	}
	if got := font.MeasureString(face, "abc"); got != fixed.I(48) {
		t.Errorf("MeasureString(abc) = %v, want 48", got)
	}
	if _, ok := face.GlyphAdvance(0x01); ok {
		t.Error("GlyphAdvance(control) should not be ok")
	}
	b, adv, ok := face.GlyphBounds('x')
	if !ok || adv != fixed.I(16) || b.Max.X-b.Min.X != fixed.I(16) {
		t.Errorf("GlyphBounds('x') = %v, %v, %v", b, adv, ok)
	}
}

func TestFaceDrawer(t *testing.T) {
	face, err := NewFace(Default(), 1)
	if err != nil {
		t.Fatal(err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, 16, 8))
	d := &font.Drawer{Dst: dst, Src: image.White, Face: face, Dot: fixed.P(0, baseline)}
	d.DrawString("AA")

	for row := 0; row < GlyphSize; row++ {
		for col := 0; col < 16; col++ {
			set := dst.RGBAAt(col, row).A != 0
			if want := glyphA.Bit(col%8, row); set != want {
				t.Fatalf("pixel (%d,%d) set=%v, want %v", col, row, set, want)
			}
		}
	}
	if d.Dot.X != fixed.I(16) {
		t.Errorf("Dot.X = %v, want 16", d.Dot.X)
	}
}
