package framebuf

import (
	"image"
	"image/png"
	"io"
	"os"
)

// Snapshot copies the visible framebuffer into an image.
func (v *Video) Snapshot() (*image.NRGBA, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	buf, err := v.surface()
	if err != nil {
		return nil, err
	}
	return buf.NRGBA(), nil
}

// EncodePNG writes the visible framebuffer to w as PNG.
func (v *Video) EncodePNG(w io.Writer) error {
	img, err := v.Snapshot()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG saves the visible framebuffer to a PNG file.
func (v *Video) SavePNG(path string) error {
	img, err := v.Snapshot()
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
