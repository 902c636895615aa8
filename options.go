package framebuf

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/gogpu/framebuf/backend"
	"github.com/gogpu/framebuf/bitfont"
	"github.com/gogpu/framebuf/vram"
)

// Default surface dimensions.
const (
	DefaultWidth  = 960
	DefaultHeight = 544
)

// Option configures a Video during Init.
//
// Example:
//
//	v, err := framebuf.Init(
//	    framebuf.WithBackend(dev),
//	    framebuf.WithSize(640, 480),
//	)
type Option func(*options)

// options holds the Init configuration.
type options struct {
	backend    backend.Backend
	allocator  *vram.Allocator
	width      int
	height     int
	pitchAlign int
	paramBuf   uint32
	maxPending uint32
	font       *bitfont.Font
	lang       language.Tag
}

// defaultOptions returns the default Init configuration.
func defaultOptions() options {
	params := backend.DefaultInitParams()
	return options{
		backend:    nil, // chosen from the registry if nil
		width:      DefaultWidth,
		height:     DefaultHeight,
		pitchAlign: 1,
		paramBuf:   params.ParameterBufferSize,
		maxPending: params.DisplayQueueMaxPendingCount,
		font:       bitfont.Default(),
		lang:       language.Und,
	}
}

func (o *options) validate() error {
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOption, o.width, o.height)
	}
	if o.pitchAlign <= 0 || o.pitchAlign&(o.pitchAlign-1) != 0 {
		return fmt.Errorf("%w: pitch alignment %d is not a power of two", ErrInvalidOption, o.pitchAlign)
	}
	if o.font == nil {
		return fmt.Errorf("%w: nil font", ErrInvalidOption)
	}
	return nil
}

// WithBackend sets the display backend. Without it Init uses the
// allocator's device when WithAllocator wraps a backend, and otherwise
// picks the highest-priority available backend from the registry.
func WithBackend(b backend.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithSize sets the surface size in pixels. The default is 960x544.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithPitchAlign rounds the row pitch up to a multiple of n pixels.
// n must be a power of two. The default pitch equals the width.
func WithPitchAlign(n int) Option {
	return func(o *options) {
		o.pitchAlign = n
	}
}

// WithParameterBufferSize sets the display parameter buffer size in bytes.
func WithParameterBufferSize(n uint32) Option {
	return func(o *options) {
		o.paramBuf = n
	}
}

// WithMaxPendingSwaps sets how many frames may wait in the display queue.
func WithMaxPendingSwaps(n uint32) Option {
	return func(o *options) {
		o.maxPending = n
	}
}

// WithFont replaces the built-in MSX font.
func WithFont(f *bitfont.Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithAllocator supplies the allocator for the framebuffer memory. It must
// wrap the same device as the backend. Sharing one allocator lets callers
// observe its Stats.
func WithAllocator(a *vram.Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithLanguage sets the locale DrawStringf formats numbers for.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}
