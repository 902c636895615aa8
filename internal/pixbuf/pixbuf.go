// Package pixbuf provides bounds-checked access to a 32-bit framebuffer.
package pixbuf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
)

// BytesPerPixel is the size of one pixel.
const BytesPerPixel = 4

// ErrShortBuffer is returned by New when the memory cannot hold the
// described surface.
var ErrShortBuffer = errors.New("pixbuf: buffer too small for surface")

// Buffer is a view of pitch*height 32-bit pixels, width of which are
// visible per row. Pixels are stored little-endian.
type Buffer struct {
	data   []byte
	width  int
	height int
	pitch  int
}

// New wraps data. pitch is in pixels and must be at least width.
func New(data []byte, width, height, pitch int) (*Buffer, error) {
	if width <= 0 || height <= 0 || pitch < width {
		return nil, fmt.Errorf("pixbuf: invalid geometry %dx%d pitch %d", width, height, pitch)
	}
	if need := pitch * height * BytesPerPixel; len(data) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(data), need)
	}
	return &Buffer{data: data, width: width, height: height, pitch: pitch}, nil
}

// Width returns the visible width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Buffer) Height() int { return b.height }

// Pitch returns the row stride in pixels.
func (b *Buffer) Pitch() int { return b.pitch }

// Bounds returns the visible area.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// In reports whether (x, y) is visible.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Offset returns the byte offset of (x, y), computed as
// (x + y*pitch) * 4. ok is false for pixels that are not visible.
func (b *Buffer) Offset(x, y int) (off int, ok bool) {
	if !b.In(x, y) {
		return 0, false
	}
	return (x + y*b.pitch) * BytesPerPixel, true
}

// Set stores v at (x, y) and reports whether the pixel was visible.
func (b *Buffer) Set(x, y int, v uint32) bool {
	off, ok := b.Offset(x, y)
	if !ok {
		return false
	}
	binary.LittleEndian.PutUint32(b.data[off:], v)
	return true
}

// At returns the value at (x, y).
func (b *Buffer) At(x, y int) (uint32, bool) {
	off, ok := b.Offset(x, y)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b.data[off:]), true
}

// Fill stores v in every pixel of r clipped to the visible area, row by
// row. It returns the number of pixels written.
func (b *Buffer) Fill(r image.Rectangle, v uint32) int {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return 0
	}
	var px [BytesPerPixel]byte
	binary.LittleEndian.PutUint32(px[:], v)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		start := (r.Min.X + y*b.pitch) * BytesPerPixel
		row := b.data[start : start+r.Dx()*BytesPerPixel]
		for i := 0; i < len(row); i += BytesPerPixel {
			copy(row[i:], px[:])
		}
	}
	return r.Dx() * r.Dy()
}

// FillRect fills the w by h rectangle at (x, y) like Fill. Clipping is
// done on the origin and size, so x+w and y+h may exceed the int range.
func (b *Buffer) FillRect(x, y, w, h int, v uint32) int {
	x, w, ok := clipSpan(x, w, b.width)
	if !ok {
		return 0
	}
	y, h, ok = clipSpan(y, h, b.height)
	if !ok {
		return 0
	}
	return b.Fill(image.Rect(x, y, x+w, y+h), v)
}

// clipSpan clips [p, p+n) to [0, limit) without computing p+n.
func clipSpan(p, n, limit int) (int, int, bool) {
	if n <= 0 || p >= limit {
		return 0, 0, false
	}
	if p < 0 {
		// n > 0 and p < 0, so the sum stays in range.
		n += p
		p = 0
		if n <= 0 {
			return 0, 0, false
		}
	}
	return p, min(n, limit-p), true
}

// Zero clears the whole buffer, including pitch padding.
func (b *Buffer) Zero() {
	clear(b.data)
}

// NRGBA copies the visible area into an image. Memory bytes are already
// in non-premultiplied R, G, B, A order.
func (b *Buffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	rowBytes := b.width * BytesPerPixel
	for y := 0; y < b.height; y++ {
		src := b.data[y*b.pitch*BytesPerPixel:]
		copy(img.Pix[y*img.Stride:y*img.Stride+rowBytes], src[:rowBytes])
	}
	return img
}
