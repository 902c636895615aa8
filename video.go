package framebuf

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"

	"github.com/gogpu/framebuf/backend"
	"github.com/gogpu/framebuf/bitfont"
	"github.com/gogpu/framebuf/internal/pixbuf"
	"github.com/gogpu/framebuf/vram"
)

// State is the lifecycle state of a Video.
type State int

const (
	// StateUninitialized is the state of a Video not created by Init.
	StateUninitialized State = iota
	// StateInitialized means the framebuffer is mapped and registered.
	StateInitialized
	// StateTornDown means End has run.
	StateTornDown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateInitialized:
		return "Initialized"
	case StateTornDown:
		return "TornDown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Video is a software-rendered framebuffer on a display backend.
//
// A Video owns the backend's lifetime from Init to End, the framebuffer
// memory and its descriptor. All methods are safe for concurrent use;
// drawing calls are serialized.
type Video struct {
	mu    sync.Mutex
	state State

	backend backend.Backend
	alloc   *vram.Allocator
	block   *vram.Block
	desc    backend.FrameBuf
	buf     *pixbuf.Buffer

	font *bitfont.Font
	lang language.Tag
}

// Init brings up the backend, allocates and maps a GPU-local framebuffer
// and registers it for display at the next vertical blank.
//
// Init either returns a fully initialized Video or an error. On failure
// everything acquired so far is released and the backend is terminated.
func Init(opts ...Option) (*Video, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	b := o.backend
	if b == nil && o.allocator != nil {
		b, _ = o.allocator.Device().(backend.Backend)
	}
	if b == nil {
		var err error
		if b, err = backend.New(); err != nil {
			return nil, fmt.Errorf("framebuf: select backend: %w", err)
		}
	}
	if o.allocator != nil && o.allocator.Device() != vram.Device(b) {
		return nil, fmt.Errorf("%w: allocator belongs to a different device", ErrInvalidOption)
	}
	log := Logger().With("backend", b.Name())

	params := backend.DefaultInitParams()
	params.DisplayQueueMaxPendingCount = o.maxPending
	params.ParameterBufferSize = o.paramBuf
	if err := b.Initialize(params); err != nil {
		return nil, fmt.Errorf("framebuf: initialize backend: %w", err)
	}

	alloc := o.allocator
	if alloc == nil {
		var err error
		if alloc, err = vram.New(b, "framebuf"); err != nil {
			return nil, terminate(b, fmt.Errorf("framebuf: %w", err))
		}
	}

	pitch := alignUp(o.width, o.pitchAlign)
	desc := backend.FrameBuf{
		Size:        backend.FrameBufSize,
		Pitch:       uint32(pitch),
		PixelFormat: backend.PixelFormatA8B8G8R8,
		Width:       uint32(o.width),
		Height:      uint32(o.height),
	}

	size := uint64(desc.ByteLen())
	block, err := alloc.Allocate(vram.KindGPULocal, size, vram.AttribReadWrite)
	if err != nil {
		log.Error("framebuf: framebuffer allocation failed", "size", size, "err", err)
		return nil, terminate(b, fmt.Errorf("framebuf: allocate framebuffer: %w", err))
	}
	desc.Base = block.Addr()

	buf, err := pixbuf.New(block.Bytes(), o.width, o.height, pitch)
	if err != nil {
		return nil, teardown(block, b, fmt.Errorf("framebuf: %w", err))
	}

	log.Debug("framebuf: descriptor",
		"size", desc.Size,
		"pitch", desc.Pitch,
		"format", desc.PixelFormat,
		"width", desc.Width,
		"height", desc.Height,
		"base", fmt.Sprintf("%#x", desc.Base))

	if err := b.SetFrameBuf(&desc, backend.SetBufNextFrame); err != nil {
		return nil, teardown(block, b, fmt.Errorf("framebuf: set framebuffer: %w", err))
	}

	log.Info("framebuf: video initialized", "width", o.width, "height", o.height, "pitch", pitch)
	return &Video{
		state:   StateInitialized,
		backend: b,
		alloc:   alloc,
		block:   block,
		desc:    desc,
		buf:     buf,
		font:    o.font,
		lang:    o.lang,
	}, nil
}

// terminate shuts b down after a failed Init and returns cause joined with
// any shutdown error.
func terminate(b backend.Backend, cause error) error {
	if err := b.Terminate(); err != nil {
		Logger().Warn("framebuf: terminate after failed init", "backend", b.Name(), "err", err)
		return errors.Join(cause, fmt.Errorf("framebuf: terminate backend: %w", err))
	}
	return cause
}

// teardown releases block and shuts b down after a failed Init.
func teardown(block *vram.Block, b backend.Backend, cause error) error {
	if err := block.Release(); err != nil {
		Logger().Warn("framebuf: release after failed init", "backend", b.Name(), "err", err)
		cause = errors.Join(cause, fmt.Errorf("framebuf: release framebuffer: %w", err))
	}
	return terminate(b, cause)
}

// alignUp rounds n up to a multiple of align, a power of two.
func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// End unmaps and frees the framebuffer memory and terminates the backend.
// Both steps are always attempted and their errors joined. A second End
// returns ErrClosed.
func (v *Video) End() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.state {
	case StateUninitialized:
		return ErrNotInitialized
	case StateTornDown:
		return ErrClosed
	}
	v.state = StateTornDown
	v.buf = nil

	log := Logger().With("backend", v.backend.Name())
	var errs []error
	if err := v.block.Release(); err != nil {
		errs = append(errs, fmt.Errorf("framebuf: release framebuffer: %w", err))
	}
	if err := v.backend.Terminate(); err != nil {
		errs = append(errs, fmt.Errorf("framebuf: terminate backend: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		log.Warn("framebuf: video teardown incomplete", "err", err)
		return err
	}
	log.Info("framebuf: video torn down")
	return nil
}

// State returns the lifecycle state.
func (v *Video) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Desc returns a copy of the framebuffer descriptor.
func (v *Video) Desc() backend.FrameBuf {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.desc
}

// Width returns the surface width in pixels.
func (v *Video) Width() int { return int(v.Desc().Width) }

// Height returns the surface height in pixels.
func (v *Video) Height() int { return int(v.Desc().Height) }

// Pitch returns the row stride in pixels.
func (v *Video) Pitch() int { return int(v.Desc().Pitch) }

// Backend returns the display backend.
func (v *Video) Backend() backend.Backend {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.backend
}

// Font returns the font used by the text methods.
func (v *Video) Font() *bitfont.Font {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.font
}

// Stats returns the statistics of the framebuffer allocator.
func (v *Video) Stats() vram.Stats {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.alloc == nil {
		return vram.Stats{}
	}
	return v.alloc.Stats()
}

// surface returns the pixel buffer. Must be called with mu held.
func (v *Video) surface() (*pixbuf.Buffer, error) {
	switch v.state {
	case StateUninitialized:
		return nil, ErrNotInitialized
	case StateTornDown:
		return nil, ErrClosed
	}
	return v.buf, nil
}
