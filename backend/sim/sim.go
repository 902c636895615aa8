// Package sim provides a host-memory display backend.
//
// The simulator implements every backend step in process memory and
// models the display queue: a framebuffer set with SetBufNextFrame waits
// in the queue until VBlank is called. It records every call, and any
// step can be made to fail, which makes it the backend of choice for
// tests and headless rendering.
//
// Importing the package registers it as "sim":
//
//	import _ "github.com/gogpu/framebuf/backend/sim"
package sim

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/framebuf/backend"
	"github.com/gogpu/framebuf/vram"
)

// Name is the registry name of the simulator.
const Name = "sim"

// Priority is the registry priority of the simulator.
const Priority = 10

func init() {
	backend.Register(Name, Priority, func() (backend.Backend, error) {
		return New(), nil
	}, nil)
}

// Simulator errors.
var (
	// ErrInjected is the default error returned by a failing step.
	ErrInjected = errors.New("sim: injected failure")

	// ErrUnknownUID is returned for handles the device never issued.
	ErrUnknownUID = errors.New("sim: unknown uid")

	// ErrUnmappedRegion is returned when unmapping memory that is not mapped.
	ErrUnmappedRegion = errors.New("sim: region not mapped")

	// ErrAlreadyMapped is returned when mapping a region twice.
	ErrAlreadyMapped = errors.New("sim: region already mapped")

	// ErrQueueFull is returned when more frames are queued than the
	// display queue allows.
	ErrQueueFull = errors.New("sim: display queue full")

	// ErrOutOfMemory is returned when a pool is exhausted.
	ErrOutOfMemory = errors.New("sim: out of memory")
)

// Op names a simulated call, for failure injection.
type Op string

// Simulated operations.
const (
	OpReserve     Op = "reserve"
	OpBase        Op = "base"
	OpMap         Op = "map"
	OpUnmap       Op = "unmap"
	OpFree        Op = "free"
	OpInitialize  Op = "initialize"
	OpSetFrameBuf Op = "setframebuf"
	OpTerminate   Op = "terminate"
)

// Calls counts every call made to the device, successful or not.
type Calls struct {
	Reserve, Base, Map, Unmap, Free    int
	Initialize, SetFrameBuf, Terminate int
	VBlank                             int
}

// baseAddr is where the simulator starts handing out addresses.
const baseAddr = 0x60000000

// block is one reserved allocation.
type block struct {
	name   string
	kind   vram.Kind
	addr   uintptr
	mem    []byte
	mapped bool
	attrib vram.Attrib
}

// Device is a simulated display backend. Device is safe for concurrent use.
type Device struct {
	mu sync.Mutex

	calls Calls
	fail  map[Op]error

	// poolLimit caps the bytes each pool can hand out; 0 means unlimited.
	poolLimit map[vram.Kind]uint64
	poolUsed  map[vram.Kind]uint64

	nextUID  vram.UID
	nextAddr uintptr
	blocks   map[vram.UID]*block

	initialized bool
	params      backend.InitParams
	pending     []backend.FrameBuf
	displayed   *backend.FrameBuf
}

// New creates an idle simulator.
func New() *Device {
	return &Device{
		fail:      make(map[Op]error),
		poolLimit: make(map[vram.Kind]uint64),
		poolUsed:  make(map[vram.Kind]uint64),
		nextUID:   0x00010001,
		nextAddr:  baseAddr,
		blocks:    make(map[vram.UID]*block),
	}
}

// Name implements backend.Backend.
func (d *Device) Name() string { return Name }

// FailOn makes op fail with err. A nil err uses ErrInjected.
func (d *Device) FailOn(op Op, err error) {
	if err == nil {
		err = ErrInjected
	}
	d.mu.Lock()
	d.fail[op] = err
	d.mu.Unlock()
}

// ClearFailures removes all injected failures.
func (d *Device) ClearFailures() {
	d.mu.Lock()
	clear(d.fail)
	d.mu.Unlock()
}

// SetPoolLimit caps the bytes the pool of kind can hand out.
func (d *Device) SetPoolLimit(kind vram.Kind, bytes uint64) {
	d.mu.Lock()
	d.poolLimit[kind] = bytes
	d.mu.Unlock()
}

// Calls returns the call counters.
func (d *Device) Calls() Calls {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// LiveBlocks returns the number of reserved, not yet freed blocks.
func (d *Device) LiveBlocks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.blocks)
}

// MappedBlocks returns the number of blocks currently mapped.
func (d *Device) MappedBlocks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, b := range d.blocks {
		if b.mapped {
			n++
		}
	}
	return n
}

// Initialized reports whether the display is up.
func (d *Device) Initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initialized
}

// Params returns the parameters of the last Initialize call.
func (d *Device) Params() backend.InitParams {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.params
}

// failure returns the injected error for op. Must be called with mu held.
func (d *Device) failure(op Op) error {
	return d.fail[op]
}

// Reserve implements vram.Device.
func (d *Device) Reserve(name string, kind vram.Kind, size uint64) (vram.UID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls.Reserve++
	if err := d.failure(OpReserve); err != nil {
		return -1, err
	}
	if size == 0 || size%kind.Granularity() != 0 {
		return -1, fmt.Errorf("sim: size %d not aligned to %d", size, kind.Granularity())
	}
	if limit := d.poolLimit[kind]; limit != 0 && d.poolUsed[kind]+size > limit {
		return -1, fmt.Errorf("%w: %s pool has %d of %d bytes in use", ErrOutOfMemory, kind, d.poolUsed[kind], limit)
	}

	uid := d.nextUID
	d.nextUID++
	d.blocks[uid] = &block{
		name: name,
		kind: kind,
		addr: d.nextAddr,
		mem:  make([]byte, size),
	}
	d.nextAddr += uintptr(size)
	d.poolUsed[kind] += size
	return uid, nil
}

// Base implements vram.Device.
func (d *Device) Base(uid vram.UID) (vram.Region, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls.Base++
	if err := d.failure(OpBase); err != nil {
		return vram.Region{}, err
	}
	b, ok := d.blocks[uid]
	if !ok {
		return vram.Region{}, fmt.Errorf("%w: %v", ErrUnknownUID, uid)
	}
	return vram.Region{Addr: b.addr, Bytes: b.mem}, nil
}

// Map implements vram.Device.
func (d *Device) Map(r vram.Region, attrib vram.Attrib) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls.Map++
	if err := d.failure(OpMap); err != nil {
		return err
	}
	b := d.blockAt(r.Addr)
	if b == nil {
		return fmt.Errorf("sim: map %#x: no block", r.Addr)
	}
	if b.mapped {
		return ErrAlreadyMapped
	}
	if r.Len() > len(b.mem) {
		return fmt.Errorf("sim: map %#x: %d bytes exceeds block of %d", r.Addr, r.Len(), len(b.mem))
	}
	b.mapped = true
	b.attrib = attrib
	return nil
}

// Unmap implements vram.Device.
func (d *Device) Unmap(r vram.Region) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls.Unmap++
	if err := d.failure(OpUnmap); err != nil {
		return err
	}
	b := d.blockAt(r.Addr)
	if b == nil || !b.mapped {
		return fmt.Errorf("%w: %#x", ErrUnmappedRegion, r.Addr)
	}
	b.mapped = false
	return nil
}

// Free implements vram.Device.
func (d *Device) Free(uid vram.UID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls.Free++
	if err := d.failure(OpFree); err != nil {
		return err
	}
	b, ok := d.blocks[uid]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownUID, uid)
	}
	d.poolUsed[b.kind] -= uint64(len(b.mem))
	delete(d.blocks, uid)
	return nil
}

// blockAt finds the block starting at addr. Must be called with mu held.
func (d *Device) blockAt(addr uintptr) *block {
	for _, b := range d.blocks {
		if b.addr == addr {
			return b
		}
	}
	return nil
}

// blockSpanning finds the mapped block containing [addr, addr+n).
// Must be called with mu held.
func (d *Device) blockSpanning(addr uintptr, n int) *block {
	for _, b := range d.blocks {
		if b.mapped && addr >= b.addr && addr+uintptr(n) <= b.addr+uintptr(len(b.mem)) {
			return b
		}
	}
	return nil
}

// Initialize implements backend.Display.
func (d *Device) Initialize(params backend.InitParams) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls.Initialize++
	if err := d.failure(OpInitialize); err != nil {
		return err
	}
	if d.initialized {
		return backend.ErrAlreadyInitialized
	}
	if err := params.Validate(); err != nil {
		return err
	}
	d.params = params
	d.initialized = true
	return nil
}

// SetFrameBuf implements backend.Display. The descriptor must point at
// mapped memory large enough for it.
func (d *Device) SetFrameBuf(fb *backend.FrameBuf, mode backend.SetBufMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls.SetFrameBuf++
	if err := d.failure(OpSetFrameBuf); err != nil {
		return err
	}
	if !d.initialized {
		return backend.ErrNotInitialized
	}
	if err := fb.Validate(); err != nil {
		return err
	}
	if d.blockSpanning(fb.Base, fb.ByteLen()) == nil {
		return fmt.Errorf("%w: base %#x is not mapped memory", backend.ErrInvalidFrameBuf, fb.Base)
	}

	switch mode {
	case backend.SetBufImmediate:
		cp := *fb
		d.displayed = &cp
	case backend.SetBufNextFrame:
		if uint32(len(d.pending)) >= d.params.DisplayQueueMaxPendingCount {
			return ErrQueueFull
		}
		d.pending = append(d.pending, *fb)
	default:
		return fmt.Errorf("sim: unknown set mode %v", mode)
	}
	return nil
}

// Terminate implements backend.Display. Queued frames are dropped.
func (d *Device) Terminate() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls.Terminate++
	if err := d.failure(OpTerminate); err != nil {
		return err
	}
	if !d.initialized {
		return backend.ErrNotInitialized
	}
	d.initialized = false
	d.pending = nil
	d.displayed = nil
	return nil
}

// VBlank simulates a vertical blank: the oldest queued frame, if any,
// becomes the displayed frame and the queue callback runs.
// It reports whether the displayed frame changed.
func (d *Device) VBlank() bool {
	d.mu.Lock()
	d.calls.VBlank++
	if len(d.pending) == 0 {
		d.mu.Unlock()
		return false
	}
	fb := d.pending[0]
	d.pending = d.pending[1:]
	d.displayed = &fb
	cb := d.params.DisplayQueueCallback
	size := d.params.DisplayQueueCallbackDataSize
	d.mu.Unlock()

	if cb != nil {
		cb(make([]byte, size))
	}
	return true
}

// Pending returns the number of frames waiting for a vertical blank.
func (d *Device) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Displayed returns the framebuffer currently scanned out.
func (d *Device) Displayed() (backend.FrameBuf, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.displayed == nil {
		return backend.FrameBuf{}, false
	}
	return *d.displayed, true
}

// Scanout copies the displayed framebuffer into an RGBA image the way
// the display would read it. It returns nil if nothing is displayed or
// the memory behind the frame has been unmapped.
func (d *Device) Scanout() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.displayed == nil {
		return nil
	}
	fb := d.displayed
	b := d.blockSpanning(fb.Base, fb.ByteLen())
	if b == nil {
		return nil
	}

	off := int(fb.Base - b.addr)
	stride := int(fb.Pitch) * 4
	w, h := int(fb.Width), int(fb.Height)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := b.mem[off+y*stride : off+y*stride+w*4]
		copy(img.Pix[y*img.Stride:], row)
	}
	return img
}

var _ backend.Backend = (*Device)(nil)
