package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/framebuf/vram"
)

// stubBackend is a Backend that does nothing.
type stubBackend struct{ name string }

func (s *stubBackend) Name() string                                        { return s.name }
func (s *stubBackend) Reserve(string, vram.Kind, uint64) (vram.UID, error) { return 1, nil }
func (s *stubBackend) Base(vram.UID) (vram.Region, error)                  { return vram.Region{}, nil }
func (s *stubBackend) Map(vram.Region, vram.Attrib) error                  { return nil }
func (s *stubBackend) Unmap(vram.Region) error                             { return nil }
func (s *stubBackend) Free(vram.UID) error                                 { return nil }
func (s *stubBackend) Initialize(InitParams) error                         { return nil }
func (s *stubBackend) SetFrameBuf(*FrameBuf, SetBufMode) error             { return nil }
func (s *stubBackend) Terminate() error                                    { return nil }

func stubFactory(name string) Factory {
	return func() (Backend, error) { return &stubBackend{name: name}, nil }
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, stubFactory("test"), nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}

	r.Unregister("test")
	if _, ok := r.Get("test"); ok {
		t.Error("backend should not exist after unregister")
	}
}

func TestRegistryPriorityOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), nil)
	r.Register("off", 500, stubFactory("off"), func() bool { return false })

	list := r.List()
	want := []string{"off", "high", "low"}
	if len(list) != len(want) {
		t.Fatalf("List() = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, list[i], want[i])
		}
	}

	avail := r.Available()
	if len(avail) != 2 || avail[0] != "high" {
		t.Errorf("Available() = %v, want [high low]", avail)
	}

	b, err := r.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if b.Name() != "high" {
		t.Errorf("New() picked %q, want high", b.Name())
	}
}

func TestRegistryFallbackOnFactoryError(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", 100, func() (Backend, error) { return nil, errors.New("no device") }, nil)
	r.Register("sim", 10, stubFactory("sim"), nil)

	b, err := r.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if b.Name() != "sim" {
		t.Errorf("New() = %q, want sim", b.Name())
	}
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()
	if _, err := r.New(); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("New() on empty registry error = %v", err)
	}

	var notFound *BackendNotFoundError
	if _, err := r.NewByName("missing"); !errors.As(err, &notFound) {
		t.Errorf("NewByName(missing) error = %v", err)
	}

	r.Register("off", 1, stubFactory("off"), func() bool { return false })
	var unavailable *BackendUnavailableError
	if _, err := r.NewByName("off"); !errors.As(err, &unavailable) {
		t.Errorf("NewByName(off) error = %v", err)
	}
}

func TestGlobalRegistry(t *testing.T) {
	Register("stub-global", 1, stubFactory("stub-global"), nil)
	t.Cleanup(func() { Unregister("stub-global") })

	if !IsRegistered("stub-global") {
		t.Fatal("stub-global should be registered")
	}
	b, err := NewByName("stub-global")
	if err != nil || b.Name() != "stub-global" {
		t.Errorf("NewByName() = %v, %v", b, err)
	}
}

func TestPixelFormat(t *testing.T) {
	f := PixelFormatA8B8G8R8
	if f.String() != "A8B8G8R8" {
		t.Errorf("String() = %q", f.String())
	}
	if f.BytesPerPixel() != 4 {
		t.Errorf("BytesPerPixel() = %d", f.BytesPerPixel())
	}
	if f.TextureFormat() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("TextureFormat() = %v", f.TextureFormat())
	}
	if PixelFormat(9).TextureFormat() != gputypes.TextureFormatUndefined {
		t.Error("unknown format should map to TextureFormatUndefined")
	}
}

func TestFrameBufValidate(t *testing.T) {
	valid := FrameBuf{
		Size:        FrameBufSize,
		Pitch:       960,
		PixelFormat: PixelFormatA8B8G8R8,
		Width:       960,
		Height:      544,
		Base:        0x60000000,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := valid.ByteLen(); got != 960*544*4 {
		t.Errorf("ByteLen() = %d", got)
	}

	tests := []struct {
		name   string
		mutate func(*FrameBuf)
	}{
		{"wrong size", func(fb *FrameBuf) { fb.Size = 4 }},
		{"zero width", func(fb *FrameBuf) { fb.Width = 0 }},
		{"pitch below width", func(fb *FrameBuf) { fb.Pitch = 100 }},
		{"nil base", func(fb *FrameBuf) { fb.Base = 0 }},
		{"bad format", func(fb *FrameBuf) { fb.PixelFormat = 7 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := valid
			tt.mutate(&fb)
			if err := fb.Validate(); !errors.Is(err, ErrInvalidFrameBuf) {
				t.Errorf("Validate() error = %v, want ErrInvalidFrameBuf", err)
			}
		})
	}

	var nilFB *FrameBuf
	if err := nilFB.Validate(); !errors.Is(err, ErrInvalidFrameBuf) {
		t.Errorf("nil Validate() error = %v", err)
	}
}

func TestDefaultInitParams(t *testing.T) {
	p := DefaultInitParams()
	if p.Flags != 0 || p.DisplayQueueMaxPendingCount != 1 || p.DisplayQueueCallback != nil {
		t.Errorf("DefaultInitParams() = %+v", p)
	}
	if p.ParameterBufferSize != 16*1024*1024 {
		t.Errorf("ParameterBufferSize = %d, want 16 MiB", p.ParameterBufferSize)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	p.DisplayQueueMaxPendingCount = 0
	if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Validate() error = %v, want ErrInvalidParams", err)
	}
}
