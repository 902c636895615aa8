package vram

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Kind selects the memory pool an allocation is reserved from.
type Kind uint32

const (
	// KindGeneric is ordinary user memory, allocated in 4 KiB pages.
	KindGeneric Kind = iota

	// KindGPULocal is the fast GPU-local pool. The pool hands out memory
	// in 256 KiB units.
	KindGPULocal
)

// Allocation granularity per pool.
const (
	// GenericGranularity is the page size of KindGeneric.
	GenericGranularity = 4 * 1024

	// GPULocalGranularity is the unit size of KindGPULocal.
	GPULocalGranularity = 256 * 1024
)

// String returns the pool name.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindGPULocal:
		return "GPULocal"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(k))
	}
}

// Granularity returns the allocation unit of the pool in bytes.
func (k Kind) Granularity() uint64 {
	if k == KindGPULocal {
		return GPULocalGranularity
	}
	return GenericGranularity
}

// BufferUsage returns the GPU buffer usage a block of this kind is created
// with by HAL-backed devices.
func (k Kind) BufferUsage() gputypes.BufferUsage {
	if k == KindGPULocal {
		return gputypes.BufferUsageCopyDst | gputypes.BufferUsageCopySrc | gputypes.BufferUsageStorage
	}
	return gputypes.BufferUsageMapWrite | gputypes.BufferUsageCopySrc
}

// AlignSize rounds size up to the smallest multiple of the kind's
// granularity that is >= size.
func AlignSize(k Kind, size uint64) uint64 {
	g := k.Granularity()
	return (size + g - 1) &^ (g - 1)
}

// Attrib describes how mapped memory may be accessed by the GPU.
type Attrib uint32

const (
	// AttribRead allows the GPU to read the mapping.
	AttribRead Attrib = 1 << iota

	// AttribWrite allows the GPU to write the mapping.
	AttribWrite

	// AttribReadWrite is AttribRead | AttribWrite.
	AttribReadWrite = AttribRead | AttribWrite
)

// Contains reports whether all bits of other are set in a.
func (a Attrib) Contains(other Attrib) bool {
	return a&other == other
}

// String returns a compact flag representation such as "RW".
func (a Attrib) String() string {
	switch a {
	case 0:
		return "None"
	case AttribRead:
		return "R"
	case AttribWrite:
		return "W"
	case AttribReadWrite:
		return "RW"
	default:
		return fmt.Sprintf("Attrib(%#x)", uint32(a))
	}
}
