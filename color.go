package framebuf

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is a packed A8B8G8R8 pixel, 0xAABBGGRR. In memory the bytes are
// R, G, B, A. Components are not premultiplied.
type Color uint32

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or
// without a leading '#'.
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var r, g, b, a uint64
	a = 0xFF
	switch len(hex) {
	case 3:
		r, g, b = (v>>8&0xF)*17, (v>>4&0xF)*17, (v&0xF)*17
	case 4:
		r, g, b, a = (v>>12&0xF)*17, (v>>8&0xF)*17, (v>>4&0xF)*17, (v&0xF)*17
	case 6:
		r, g, b = v>>16&0xFF, v>>8&0xFF, v&0xFF
	case 8:
		r, g, b, a = v>>24&0xFF, v>>16&0xFF, v>>8&0xFF, v&0xFF
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// NRGBA returns c as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String returns the color as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R(), c.G(), c.B(), c.A())
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(0xFF, 0xFF, 0xFF)
	Red         = RGB(0xFF, 0, 0)
	Green       = RGB(0, 0xFF, 0)
	Blue        = RGB(0, 0, 0xFF)
	Yellow      = RGB(0xFF, 0xFF, 0)
	Cyan        = RGB(0, 0xFF, 0xFF)
	Magenta     = RGB(0xFF, 0, 0xFF)
	Transparent = RGBA(0, 0, 0, 0)
)

var _ color.Color = Color(0)
