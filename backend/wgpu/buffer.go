package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/framebuf/vram"
)

// mapState represents the mapping state of a buffer.
type mapState int

const (
	// mapStateUnmapped means the buffer is not mapped.
	mapStateUnmapped mapState = iota
	// mapStateMapped means the buffer is mapped.
	mapStateMapped
)

// String returns the string representation of mapState.
func (s mapState) String() string {
	switch s {
	case mapStateUnmapped:
		return "Unmapped"
	case mapStateMapped:
		return "Mapped"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// buffer is one framebuffer allocation: the GPU buffer and its host shadow.
type buffer struct {
	halBuffer hal.Buffer
	kind      vram.Kind
	usage     gputypes.BufferUsage
	addr      uintptr
	shadow    []byte
	state     mapState
	attrib    vram.Attrib
}
