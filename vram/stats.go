package vram

import "fmt"

// Stats counts successful device calls made by an Allocator.
type Stats struct {
	// Reserves is the number of successful Reserve calls.
	Reserves uint64

	// Frees is the number of successful Free calls, including rollbacks.
	Frees uint64

	// Maps is the number of successful Map calls.
	Maps uint64

	// Unmaps is the number of successful Unmap calls.
	Unmaps uint64

	// Rollbacks is the number of allocations abandoned after a failed step.
	Rollbacks uint64

	// LiveBlocks is the number of blocks not yet released.
	LiveBlocks int

	// LiveBytes is the rounded size of all live blocks.
	LiveBytes uint64
}

// Balanced reports whether every reserve was freed and every map unmapped.
func (s Stats) Balanced() bool {
	return s.Reserves == s.Frees && s.Maps == s.Unmaps && s.LiveBlocks == 0
}

// String returns a human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("VRAM[%d live, %d KiB, reserve/free %d/%d, map/unmap %d/%d, %d rollbacks]",
		s.LiveBlocks,
		s.LiveBytes/1024,
		s.Reserves, s.Frees,
		s.Maps, s.Unmaps,
		s.Rollbacks)
}
