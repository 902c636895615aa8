package backend

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/framebuf/vram"
)

// Common backend errors.
var (
	// ErrNotInitialized is returned when display calls are made before Initialize.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrAlreadyInitialized is returned when Initialize is called twice.
	ErrAlreadyInitialized = errors.New("backend: already initialized")

	// ErrInvalidFrameBuf is returned when SetFrameBuf gets an unusable descriptor.
	ErrInvalidFrameBuf = errors.New("backend: invalid framebuffer")

	// ErrInvalidParams is returned when InitParams are out of range.
	ErrInvalidParams = errors.New("backend: invalid init params")
)

// PixelFormat tags the layout of one framebuffer pixel.
type PixelFormat uint32

const (
	// PixelFormatA8B8G8R8 is a 32-bit pixel packed as 0xAABBGGRR.
	// Stored little-endian the bytes in memory are R, G, B, A.
	PixelFormatA8B8G8R8 PixelFormat = 0x00000000
)

// BytesPerPixel returns the storage size of one pixel.
func (f PixelFormat) BytesPerPixel() int {
	return 4
}

// TextureFormat returns the equivalent GPU texture format.
func (f PixelFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case PixelFormatA8B8G8R8:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// String returns the format name.
func (f PixelFormat) String() string {
	switch f {
	case PixelFormatA8B8G8R8:
		return "A8B8G8R8"
	default:
		return fmt.Sprintf("Unknown(%#x)", uint32(f))
	}
}

// FrameBuf describes a framebuffer to the display.
type FrameBuf struct {
	// Size is the size of this struct, for ABI versioning.
	Size uint32

	// Pitch is the number of pixels between the starts of two scanlines.
	// It may exceed Width.
	Pitch uint32

	// PixelFormat is the pixel layout.
	PixelFormat PixelFormat

	// Width and Height are the visible dimensions in pixels.
	Width  uint32
	Height uint32

	// Base is the device address of the first pixel.
	Base uintptr
}

// FrameBufSize is the value the display expects in FrameBuf.Size.
const FrameBufSize = uint32(unsafe.Sizeof(FrameBuf{}))

// ByteLen returns the number of bytes the framebuffer spans.
func (fb *FrameBuf) ByteLen() int {
	return int(fb.Pitch) * int(fb.Height) * fb.PixelFormat.BytesPerPixel()
}

// Validate checks the descriptor for internal consistency.
func (fb *FrameBuf) Validate() error {
	switch {
	case fb == nil:
		return fmt.Errorf("%w: nil descriptor", ErrInvalidFrameBuf)
	case fb.Size != FrameBufSize:
		return fmt.Errorf("%w: size %d, want %d", ErrInvalidFrameBuf, fb.Size, FrameBufSize)
	case fb.Width == 0 || fb.Height == 0:
		return fmt.Errorf("%w: empty %dx%d", ErrInvalidFrameBuf, fb.Width, fb.Height)
	case fb.Pitch < fb.Width:
		return fmt.Errorf("%w: pitch %d < width %d", ErrInvalidFrameBuf, fb.Pitch, fb.Width)
	case fb.Base == 0:
		return fmt.Errorf("%w: nil base", ErrInvalidFrameBuf)
	case fb.PixelFormat.TextureFormat() == gputypes.TextureFormatUndefined:
		return fmt.Errorf("%w: pixel format %v", ErrInvalidFrameBuf, fb.PixelFormat)
	}
	return nil
}

// SetBufMode selects when a new framebuffer takes effect.
type SetBufMode uint32

const (
	// SetBufImmediate switches the scanout source right away.
	SetBufImmediate SetBufMode = iota

	// SetBufNextFrame switches at the next vertical blank.
	SetBufNextFrame
)

// String returns the mode name.
func (m SetBufMode) String() string {
	switch m {
	case SetBufImmediate:
		return "Immediate"
	case SetBufNextFrame:
		return "NextFrame"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(m))
	}
}

// DefaultParameterBufferSize is the parameter buffer handed to the
// rendering backend (16 MiB).
const DefaultParameterBufferSize = 16 * 1024 * 1024

// InitParams configures the rendering backend.
type InitParams struct {
	// Flags are backend specific; 0 selects defaults.
	Flags uint32

	// DisplayQueueMaxPendingCount bounds the frames waiting for a
	// vertical blank.
	DisplayQueueMaxPendingCount uint32

	// DisplayQueueCallback is invoked when a queued frame is shown.
	// May be nil.
	DisplayQueueCallback func(data []byte)

	// DisplayQueueCallbackDataSize is the size of the callback payload.
	DisplayQueueCallbackDataSize uint32

	// ParameterBufferSize is the size of the backend parameter buffer.
	ParameterBufferSize uint32
}

// DefaultInitParams returns the parameters used for a single framebuffer:
// no flags, one pending frame, no callback, a 16 MiB parameter buffer.
func DefaultInitParams() InitParams {
	return InitParams{
		Flags:                       0,
		DisplayQueueMaxPendingCount: 1,
		ParameterBufferSize:         DefaultParameterBufferSize,
	}
}

// Validate checks the parameters.
func (p *InitParams) Validate() error {
	if p.DisplayQueueMaxPendingCount == 0 {
		return fmt.Errorf("%w: max pending count is 0", ErrInvalidParams)
	}
	if p.ParameterBufferSize == 0 {
		return fmt.Errorf("%w: parameter buffer size is 0", ErrInvalidParams)
	}
	return nil
}

// Display is the presentation half of a backend.
type Display interface {
	// Initialize brings up the rendering backend.
	Initialize(params InitParams) error

	// SetFrameBuf registers fb as the scanout source.
	SetFrameBuf(fb *FrameBuf, mode SetBufMode) error

	// Terminate shuts the rendering backend down.
	Terminate() error
}

// Backend combines device memory with a display.
type Backend interface {
	vram.Device
	Display

	// Name returns the backend identifier (e.g., "sim", "wgpu").
	Name() string
}
