// Package vram allocates framebuffer memory from a display device.
//
// An allocation runs three steps against a [Device]: reserve a block from
// the requested pool, resolve it to an address range, and map that range
// into the GPU page tables. Sizes are rounded to the pool granularity
// first: 256 KiB for [KindGPULocal], 4 KiB for [KindGeneric].
//
//	a, err := vram.New(dev, "framebuffer")
//	if err != nil {
//		return err
//	}
//	blk, err := a.Allocate(vram.KindGPULocal, 960*544*4, vram.AttribReadWrite)
//	if err != nil {
//		return err // *vram.StepError; nothing is left reserved
//	}
//	defer blk.Release()
//
// Device implementations live in the backend packages.
package vram
