package framebuf

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/framebuf/backend"
	"github.com/gogpu/framebuf/backend/sim"
	"github.com/gogpu/framebuf/bitfont"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.backend != nil {
		t.Error("default backend should be nil")
	}
	if o.width != 960 || o.height != 544 {
		t.Errorf("default size = %dx%d, want 960x544", o.width, o.height)
	}
	if o.pitchAlign != 1 {
		t.Errorf("default pitch alignment = %d", o.pitchAlign)
	}
	if o.font != bitfont.Default() {
		t.Error("default font should be the MSX table")
	}
	if o.paramBuf != backend.DefaultParameterBufferSize || o.maxPending != 1 {
		t.Errorf("default backend params = %d/%d", o.paramBuf, o.maxPending)
	}
	if err := o.validate(); err != nil {
		t.Errorf("validate() error = %v", err)
	}
}

func TestOptionsApply(t *testing.T) {
	dev := sim.New()
	f, err := bitfont.New(' ', make([]byte, 8))
	if err != nil {
		t.Fatal(err)
	}

	o := defaultOptions()
	for _, opt := range []Option{
		WithBackend(dev),
		WithSize(320, 200),
		WithPitchAlign(64),
		WithParameterBufferSize(1 << 20),
		WithMaxPendingSwaps(2),
		WithFont(f),
		WithLanguage(language.German),
	} {
		opt(&o)
	}

	if o.backend != dev {
		t.Error("WithBackend not applied")
	}
	if o.width != 320 || o.height != 200 {
		t.Errorf("WithSize: %dx%d", o.width, o.height)
	}
	if o.pitchAlign != 64 || o.paramBuf != 1<<20 || o.maxPending != 2 {
		t.Errorf("options = %+v", o)
	}
	if o.font != f || o.lang != language.German {
		t.Error("WithFont/WithLanguage not applied")
	}
}

func TestInitPassesBackendParams(t *testing.T) {
	v, dev := newTestVideo(t, WithSize(8, 8), WithParameterBufferSize(4096), WithMaxPendingSwaps(3))
	_ = v
	p := dev.Params()
	if p.ParameterBufferSize != 4096 || p.DisplayQueueMaxPendingCount != 3 {
		t.Errorf("Params() = %+v", p)
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct{ n, align, want int }{
		{960, 1, 960},
		{960, 64, 960},
		{961, 64, 1024},
		{100, 16, 112},
		{1, 8, 8},
	}
	for _, tt := range tests {
		if got := alignUp(tt.n, tt.align); got != tt.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", tt.n, tt.align, got, tt.want)
		}
	}
}
