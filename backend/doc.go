// Package backend defines the device a framebuffer lives on.
//
// A [Backend] supplies device memory (the [vram.Device] steps) and a
// [Display] that scans a registered [FrameBuf] out to the screen.
//
// # Backend Registration
//
// Backends register themselves from init and are selected by priority:
//
//	import _ "github.com/gogpu/framebuf/backend/sim"
//
//	b, err := backend.New()             // best available
//	b, err := backend.NewByName("sim")  // a specific one
//
// # Available Backends
//
//   - "sim": host-memory simulator with a modelled display queue (backend/sim)
//   - wgpu: gogpu/wgpu HAL device, constructed explicitly with
//     wgpu.New or wgpu.FromProvider (backend/wgpu)
package backend
