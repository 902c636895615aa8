package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/framebuf/backend"
	"github.com/gogpu/framebuf/vram"
)

// Name is the backend identifier.
const Name = "wgpu"

// Device errors.
var (
	// ErrNilDevice is returned when a HAL device or queue is missing.
	ErrNilDevice = errors.New("wgpu: HAL device or queue is nil")

	// ErrUnsupportedFormat is returned for scanout formats other than
	// RGBA8Unorm and BGRA8Unorm.
	ErrUnsupportedFormat = errors.New("wgpu: unsupported surface format")

	// ErrBufferNotFound is returned for handles or addresses the device
	// does not know.
	ErrBufferNotFound = errors.New("wgpu: buffer not found")

	// ErrBufferAlreadyMapped is returned when mapping a mapped buffer.
	ErrBufferAlreadyMapped = errors.New("wgpu: buffer is already mapped")

	// ErrBufferNotMapped is returned when unmapping an unmapped buffer.
	ErrBufferNotMapped = errors.New("wgpu: buffer is not mapped")

	// ErrInvalidMapMode is returned when mapping without access rights.
	ErrInvalidMapMode = errors.New("wgpu: invalid map attributes")

	// ErrQueueFull is returned when the display queue has no free slot.
	ErrQueueFull = errors.New("wgpu: display queue full")
)

// baseAddr is the first device address handed out. HAL buffers have no
// host-visible address, so the device numbers them itself.
const baseAddr = 0x80000000

// Device is a display backend on a gogpu/wgpu HAL device.
//
// Every reserved block is a hal.Buffer plus a host shadow of the same
// size. Drawing writes the shadow; the shadow is uploaded with
// Queue.WriteBuffer when the block is unmapped and whenever its frame
// reaches the screen.
//
// Device is safe for concurrent use.
type Device struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	nextUID  vram.UID
	nextAddr uintptr
	buffers  map[vram.UID]*buffer

	initialized bool
	params      backend.InitParams
	paramBuf    hal.Buffer
	pending     []backend.FrameBuf
	displayed   *backend.FrameBuf
	uploads     int
}

// New wraps a HAL device and queue. Frames are scanned out as RGBA8Unorm.
func New(device hal.Device, queue hal.Queue) (*Device, error) {
	return newDevice(device, queue, gputypes.TextureFormatRGBA8Unorm)
}

// FromProvider builds a device on the GPU shared by a gpucontext provider,
// such as a gogpu window. The provider must also expose HalDevice() and
// HalQueue() returning hal.Device and hal.Queue. The provider's surface
// format decides the scanout byte order.
func FromProvider(provider gpucontext.DeviceProvider) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	if provider == nil {
		return nil, ErrNilDevice
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}
	return newDevice(device, queue, provider.SurfaceFormat())
}

func newDevice(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) (*Device, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if format != gputypes.TextureFormatRGBA8Unorm && format != gputypes.TextureFormatBGRA8Unorm {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	return &Device{
		device:   device,
		queue:    queue,
		format:   format,
		nextUID:  1,
		nextAddr: baseAddr,
		buffers:  make(map[vram.UID]*buffer),
	}, nil
}

// Name implements backend.Backend.
func (d *Device) Name() string { return Name }

// Format returns the scanout texture format.
func (d *Device) Format() gputypes.TextureFormat { return d.format }

// Reserve implements vram.Device by creating a hal.Buffer whose usage
// follows the kind.
func (d *Device) Reserve(name string, kind vram.Kind, size uint64) (vram.UID, error) {
	if size == 0 {
		return -1, vram.ErrInvalidSize
	}
	usage := kind.BufferUsage()
	halBuf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: name,
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return -1, fmt.Errorf("wgpu: create buffer: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	uid := d.nextUID
	d.nextUID++
	d.buffers[uid] = &buffer{
		halBuffer: halBuf,
		kind:      kind,
		usage:     usage,
		addr:      d.nextAddr,
		shadow:    make([]byte, size),
	}
	d.nextAddr += uintptr(size)
	return uid, nil
}

// Base implements vram.Device.
func (d *Device) Base(uid vram.UID) (vram.Region, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buffers[uid]
	if !ok {
		return vram.Region{}, fmt.Errorf("%w: uid %v", ErrBufferNotFound, uid)
	}
	return vram.Region{Addr: b.addr, Bytes: b.shadow}, nil
}

// Map implements vram.Device.
func (d *Device) Map(r vram.Region, attrib vram.Attrib) error {
	if attrib == 0 {
		return ErrInvalidMapMode
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	b := d.bufferAt(r.Addr)
	if b == nil {
		return fmt.Errorf("%w: addr %#x", ErrBufferNotFound, r.Addr)
	}
	if b.state == mapStateMapped {
		return ErrBufferAlreadyMapped
	}
	b.state = mapStateMapped
	b.attrib = attrib
	return nil
}

// Unmap implements vram.Device. The shadow is uploaded before the
// mapping goes away.
func (d *Device) Unmap(r vram.Region) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	b := d.bufferAt(r.Addr)
	if b == nil {
		return fmt.Errorf("%w: addr %#x", ErrBufferNotFound, r.Addr)
	}
	if b.state != mapStateMapped {
		return ErrBufferNotMapped
	}
	d.uploadLocked(b)
	b.state = mapStateUnmapped
	return nil
}

// Free implements vram.Device.
func (d *Device) Free(uid vram.UID) error {
	d.mu.Lock()
	b, ok := d.buffers[uid]
	if ok {
		delete(d.buffers, uid)
	}
	d.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: uid %v", ErrBufferNotFound, uid)
	}
	d.device.DestroyBuffer(b.halBuffer)
	return nil
}

// Initialize implements backend.Display. It creates the parameter buffer.
func (d *Device) Initialize(params backend.InitParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return backend.ErrAlreadyInitialized
	}
	paramBuf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "parameter-buffer",
		Size:  uint64(params.ParameterBufferSize),
		Usage: gputypes.BufferUsageStorage,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create parameter buffer: %w", err)
	}
	d.paramBuf = paramBuf
	d.params = params
	d.initialized = true
	return nil
}

// SetFrameBuf implements backend.Display.
func (d *Device) SetFrameBuf(fb *backend.FrameBuf, mode backend.SetBufMode) error {
	if err := fb.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return backend.ErrNotInitialized
	}
	b := d.bufferSpanning(fb.Base, fb.ByteLen())
	if b == nil {
		return fmt.Errorf("%w: base %#x is not mapped memory", backend.ErrInvalidFrameBuf, fb.Base)
	}

	switch mode {
	case backend.SetBufImmediate:
		cp := *fb
		d.displayed = &cp
		d.uploadLocked(b)
	case backend.SetBufNextFrame:
		if uint32(len(d.pending)) >= d.params.DisplayQueueMaxPendingCount {
			return ErrQueueFull
		}
		d.pending = append(d.pending, *fb)
	default:
		return fmt.Errorf("wgpu: unknown set mode %v", mode)
	}
	return nil
}

// Terminate implements backend.Display.
func (d *Device) Terminate() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return backend.ErrNotInitialized
	}
	if d.paramBuf != nil {
		d.device.DestroyBuffer(d.paramBuf)
		d.paramBuf = nil
	}
	d.pending = nil
	d.displayed = nil
	d.initialized = false
	return nil
}

// VBlank promotes the oldest queued frame to the screen and uploads its
// memory. It reports whether the displayed frame changed.
func (d *Device) VBlank() bool {
	d.mu.Lock()
	if len(d.pending) == 0 {
		d.mu.Unlock()
		return false
	}
	fb := d.pending[0]
	d.pending = d.pending[1:]
	d.displayed = &fb
	if b := d.bufferSpanning(fb.Base, fb.ByteLen()); b != nil {
		d.uploadLocked(b)
	}
	cb := d.params.DisplayQueueCallback
	size := d.params.DisplayQueueCallbackDataSize
	d.mu.Unlock()

	if cb != nil {
		cb(make([]byte, size))
	}
	return true
}

// Displayed returns the framebuffer currently on screen.
func (d *Device) Displayed() (backend.FrameBuf, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.displayed == nil {
		return backend.FrameBuf{}, false
	}
	return *d.displayed, true
}

// Uploads returns how many times a shadow was written to the GPU.
func (d *Device) Uploads() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.uploads
}

// Buffers returns the number of live framebuffer buffers.
func (d *Device) Buffers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buffers)
}

// uploadLocked writes b's shadow to its GPU buffer in the scanout byte
// order. Must be called with mu held.
func (d *Device) uploadLocked(b *buffer) {
	data := b.shadow
	if d.format == gputypes.TextureFormatBGRA8Unorm {
		data = make([]byte, len(b.shadow))
		swizzleRB(data, b.shadow)
	}
	d.queue.WriteBuffer(b.halBuffer, 0, data)
	d.uploads++
}

// bufferAt finds the buffer starting at addr. Must be called with mu held.
func (d *Device) bufferAt(addr uintptr) *buffer {
	for _, b := range d.buffers {
		if b.addr == addr {
			return b
		}
	}
	return nil
}

// bufferSpanning finds the mapped buffer containing [addr, addr+n).
// Must be called with mu held.
func (d *Device) bufferSpanning(addr uintptr, n int) *buffer {
	for _, b := range d.buffers {
		if b.state == mapStateMapped && addr >= b.addr && addr+uintptr(n) <= b.addr+uintptr(len(b.shadow)) {
			return b
		}
	}
	return nil
}

// swizzleRB copies src to dst exchanging the R and B byte of every pixel.
func swizzleRB(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}

var _ backend.Backend = (*Device)(nil)
