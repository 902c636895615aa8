package sim

import (
	"errors"
	"testing"

	"github.com/gogpu/framebuf/backend"
	"github.com/gogpu/framebuf/vram"
)

// mapBlock reserves, resolves and maps a block directly on the device.
func mapBlock(t *testing.T, d *Device, size uint64) (vram.UID, vram.Region) {
	t.Helper()
	uid, err := d.Reserve("test", vram.KindGPULocal, size)
	if err != nil {
		t.Fatalf("Reserve() error = %v", err)
	}
	r, err := d.Base(uid)
	if err != nil {
		t.Fatalf("Base() error = %v", err)
	}
	if err := d.Map(r, vram.AttribReadWrite); err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	return uid, r
}

func frameBufAt(r vram.Region, w, h uint32) *backend.FrameBuf {
	return &backend.FrameBuf{
		Size:        backend.FrameBufSize,
		Pitch:       w,
		PixelFormat: backend.PixelFormatA8B8G8R8,
		Width:       w,
		Height:      h,
		Base:        r.Addr,
	}
}

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(Name) {
		t.Fatal("sim should register itself")
	}
	b, err := backend.NewByName(Name)
	if err != nil {
		t.Fatalf("NewByName() error = %v", err)
	}
	if b.Name() != Name {
		t.Errorf("Name() = %q", b.Name())
	}
}

func TestMemoryLifecycle(t *testing.T) {
	d := New()
	uid, r := mapBlock(t, d, vram.GPULocalGranularity)

	if r.Addr != baseAddr {
		t.Errorf("Addr = %#x, want %#x", r.Addr, baseAddr)
	}
	if r.Len() != vram.GPULocalGranularity {
		t.Errorf("Len() = %d", r.Len())
	}
	if d.MappedBlocks() != 1 || d.LiveBlocks() != 1 {
		t.Errorf("mapped/live = %d/%d, want 1/1", d.MappedBlocks(), d.LiveBlocks())
	}
	if err := d.Map(r, vram.AttribRead); !errors.Is(err, ErrAlreadyMapped) {
		t.Errorf("second Map() error = %v", err)
	}

	if err := d.Unmap(r); err != nil {
		t.Fatalf("Unmap() error = %v", err)
	}
	if err := d.Unmap(r); !errors.Is(err, ErrUnmappedRegion) {
		t.Errorf("second Unmap() error = %v", err)
	}
	if err := d.Free(uid); err != nil {
		t.Fatalf("Free() error = %v", err)
	}
	if err := d.Free(uid); !errors.Is(err, ErrUnknownUID) {
		t.Errorf("second Free() error = %v", err)
	}
	if d.LiveBlocks() != 0 {
		t.Errorf("LiveBlocks() = %d", d.LiveBlocks())
	}
}

func TestReserveRejectsUnalignedSize(t *testing.T) {
	d := New()
	if _, err := d.Reserve("x", vram.KindGPULocal, 4096); err == nil {
		t.Error("Reserve() should reject sizes not aligned to the pool granularity")
	}
	if _, err := d.Reserve("x", vram.KindGeneric, 4096); err != nil {
		t.Errorf("Reserve() error = %v", err)
	}
}

func TestPoolLimit(t *testing.T) {
	d := New()
	d.SetPoolLimit(vram.KindGPULocal, vram.GPULocalGranularity)

	if _, err := d.Reserve("a", vram.KindGPULocal, vram.GPULocalGranularity); err != nil {
		t.Fatalf("first Reserve() error = %v", err)
	}
	if _, err := d.Reserve("b", vram.KindGPULocal, vram.GPULocalGranularity); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("second Reserve() error = %v, want ErrOutOfMemory", err)
	}
}

func TestFailOn(t *testing.T) {
	d := New()
	custom := errors.New("boom")
	d.FailOn(OpReserve, custom)

	if _, err := d.Reserve("x", vram.KindGeneric, 4096); !errors.Is(err, custom) {
		t.Errorf("Reserve() error = %v, want %v", err, custom)
	}

	d.FailOn(OpInitialize, nil)
	if err := d.Initialize(backend.DefaultInitParams()); !errors.Is(err, ErrInjected) {
		t.Errorf("Initialize() error = %v, want ErrInjected", err)
	}

	d.ClearFailures()
	if _, err := d.Reserve("x", vram.KindGeneric, 4096); err != nil {
		t.Errorf("Reserve() after ClearFailures error = %v", err)
	}
	if got := d.Calls().Reserve; got != 2 {
		t.Errorf("Calls().Reserve = %d, want 2", got)
	}
}

func TestDisplayNextFrame(t *testing.T) {
	d := New()
	var shown int
	params := backend.DefaultInitParams()
	params.DisplayQueueCallback = func([]byte) { shown++ }

	if err := d.Initialize(params); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := d.Initialize(params); !errors.Is(err, backend.ErrAlreadyInitialized) {
		t.Errorf("second Initialize() error = %v", err)
	}

	_, r := mapBlock(t, d, vram.GPULocalGranularity)
	r.Bytes[0], r.Bytes[1], r.Bytes[2], r.Bytes[3] = 0x11, 0x22, 0x33, 0xFF
	fb := frameBufAt(r, 16, 16)

	if err := d.SetFrameBuf(fb, backend.SetBufNextFrame); err != nil {
		t.Fatalf("SetFrameBuf() error = %v", err)
	}
	if _, ok := d.Displayed(); ok {
		t.Error("frame should not be displayed before the vertical blank")
	}
	if err := d.SetFrameBuf(fb, backend.SetBufNextFrame); !errors.Is(err, ErrQueueFull) {
		t.Errorf("queueing past max pending error = %v, want ErrQueueFull", err)
	}

	if !d.VBlank() {
		t.Fatal("VBlank() should promote the queued frame")
	}
	if d.VBlank() {
		t.Error("VBlank() with an empty queue should report no change")
	}
	if shown != 1 {
		t.Errorf("callback ran %d times, want 1", shown)
	}

	got, ok := d.Displayed()
	if !ok || got.Base != r.Addr {
		t.Fatalf("Displayed() = %+v, %v", got, ok)
	}

	img := d.Scanout()
	if img == nil {
		t.Fatal("Scanout() = nil")
	}
	if c := img.RGBAAt(0, 0); c.R != 0x11 || c.G != 0x22 || c.B != 0x33 || c.A != 0xFF {
		t.Errorf("Scanout pixel = %+v", c)
	}

	if err := d.Terminate(); err != nil {
		t.Fatalf("Terminate() error = %v", err)
	}
	if err := d.Terminate(); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("second Terminate() error = %v", err)
	}
	if d.Scanout() != nil {
		t.Error("Scanout() after Terminate should be nil")
	}
}

func TestSetFrameBufValidation(t *testing.T) {
	d := New()
	_, r := mapBlock(t, d, vram.GPULocalGranularity)

	if err := d.SetFrameBuf(frameBufAt(r, 16, 16), backend.SetBufImmediate); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("SetFrameBuf() before Initialize error = %v", err)
	}
	if err := d.Initialize(backend.DefaultInitParams()); err != nil {
		t.Fatal(err)
	}

	unmapped := frameBufAt(vram.Region{Addr: 0x1000}, 16, 16)
	if err := d.SetFrameBuf(unmapped, backend.SetBufImmediate); !errors.Is(err, backend.ErrInvalidFrameBuf) {
		t.Errorf("SetFrameBuf(unmapped) error = %v", err)
	}

	// 256 KiB holds 65536 pixels; 512x512 does not fit.
	tooBig := frameBufAt(r, 512, 512)
	if err := d.SetFrameBuf(tooBig, backend.SetBufImmediate); !errors.Is(err, backend.ErrInvalidFrameBuf) {
		t.Errorf("SetFrameBuf(too big) error = %v", err)
	}

	if err := d.SetFrameBuf(frameBufAt(r, 16, 16), backend.SetBufImmediate); err != nil {
		t.Fatalf("SetFrameBuf(immediate) error = %v", err)
	}
	if _, ok := d.Displayed(); !ok {
		t.Error("immediate frame should be displayed at once")
	}
}
