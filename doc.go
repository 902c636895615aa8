// Package framebuf is a software-rendered framebuffer on a display
// backend.
//
// Init brings up a backend, allocates GPU-local memory for a single
// A8B8G8R8 framebuffer, maps it for CPU access and registers it for
// display. The returned Video offers pixel, rectangle and bitmap-text
// drawing; End unmaps and frees the memory and shuts the backend down.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/framebuf"
//	    _ "github.com/gogpu/framebuf/backend/sim"
//	)
//
//	v, err := framebuf.Init()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer v.End()
//
//	v.Clear()
//	v.FillRect(0, 0, 960, 32, framebuf.Blue)
//	v.DrawString(8, 8, framebuf.White, "READY")
//	v.DrawStringf(8, 48, framebuf.Yellow, "%d x %d", v.Width(), v.Height())
//
// # Backends
//
// Backends live under backend/. backend/sim keeps framebuffer memory on
// the host and models the display queue; backend/wgpu places it in
// gogpu/wgpu HAL buffers. Without WithBackend, Init picks the
// highest-priority registered backend.
//
// # Text
//
// Text uses an 8x8 bitmap font drawn at twice its size, so every
// character occupies a 16x16 cell. See package bitfont.
//
// # Coordinates
//
// (0, 0) is the top-left pixel. SetPixel rejects coordinates outside the
// surface; FillRect and the text methods clip.
//
// # Logging
//
// framebuf logs through log/slog and is silent by default. See SetLogger.
package framebuf
