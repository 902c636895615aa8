// Package wgpu provides a display backend on a gogpu/wgpu HAL device.
//
// Framebuffer blocks are HAL buffers. The CPU draws into a host shadow of
// each buffer and the shadow is uploaded with Queue.WriteBuffer when the
// block is unmapped and when its frame is presented.
//
// # Usage
//
// The backend does not own the GPU. Build it from a HAL device and queue,
// or from a gpucontext.DeviceProvider such as a gogpu window:
//
//	dev, err := wgpu.FromProvider(app.GPUContextProvider())
//	if err != nil {
//	    return err
//	}
//	v, err := framebuf.Init(framebuf.WithBackend(dev))
//
// When the provider reports a BGRA8Unorm surface, pixels are swizzled on
// upload. The Video layout itself is always A8B8G8R8.
//
// Call VBlank from the presentation loop to promote queued frames.
package wgpu
