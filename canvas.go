package framebuf

import (
	"fmt"
)

// Clear zero-fills the whole framebuffer, pitch padding included.
func (v *Video) Clear() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	buf, err := v.surface()
	if err != nil {
		return err
	}
	buf.Zero()
	return nil
}

// SetPixel writes c at (x, y). Coordinates outside the surface return an
// *OutOfBoundsError and nothing is written.
func (v *Video) SetPixel(x, y int, c Color) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	buf, err := v.surface()
	if err != nil {
		return err
	}
	if !buf.Set(x, y, uint32(c)) {
		return &OutOfBoundsError{X: x, Y: y, Width: buf.Width(), Height: buf.Height()}
	}
	return nil
}

// Pixel returns the color at (x, y).
func (v *Video) Pixel(x, y int) (Color, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	buf, err := v.surface()
	if err != nil {
		return 0, err
	}
	px, ok := buf.At(x, y)
	if !ok {
		return 0, &OutOfBoundsError{X: x, Y: y, Width: buf.Width(), Height: buf.Height()}
	}
	return Color(px), nil
}

// FillRect fills the w by h rectangle at (x, y) with c, row by row. The
// rectangle is clipped to the surface; a rectangle entirely outside it
// draws nothing, even when x+w or y+h would overflow an int. Negative sizes return ErrInvalidRect.
func (v *Video) FillRect(x, y, w, h int, c Color) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidRect, w, h)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	buf, err := v.surface()
	if err != nil {
		return err
	}
	buf.FillRect(x, y, w, h, uint32(c))
	return nil
}
