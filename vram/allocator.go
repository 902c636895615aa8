package vram

import (
	"errors"
	"fmt"
	"sync"
)

// ErrShortRegion is returned when a device resolves a block to fewer bytes
// than were reserved.
var ErrShortRegion = errors.New("vram: resolved region shorter than block")

// UID is the opaque handle a device returns for a reserved block.
type UID int32

// String formats the handle the way device logs print it.
func (u UID) String() string {
	return fmt.Sprintf("0x%08X", uint32(u))
}

// Region is a block resolved into the process address space.
type Region struct {
	// Addr is the base address of the mapping as seen by the device.
	Addr uintptr

	// Bytes is the host view of the mapping.
	Bytes []byte
}

// Len returns the region length in bytes.
func (r Region) Len() int {
	return len(r.Bytes)
}

// Device is the memory half of a display backend. Each method is one
// independently fallible allocation step.
type Device interface {
	// Reserve reserves size bytes from the pool of the given kind.
	Reserve(name string, kind Kind, size uint64) (UID, error)

	// Base resolves a reserved block to its address range.
	Base(uid UID) (Region, error)

	// Map makes the region visible to the GPU with the given access.
	Map(r Region, attrib Attrib) error

	// Unmap removes the region from the GPU page tables.
	Unmap(r Region) error

	// Free returns the block to its pool.
	Free(uid UID) error
}

// Allocator reserves, resolves and maps device memory, rolling back
// partially completed allocations.
//
// Allocator is safe for concurrent use.
type Allocator struct {
	mu    sync.Mutex
	dev   Device
	label string
	stats Stats
}

// New creates an allocator over dev. Blocks are reserved under the
// name label.
func New(dev Device, label string) (*Allocator, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	return &Allocator{dev: dev, label: label}, nil
}

// Device returns the underlying device.
func (a *Allocator) Device() Device {
	return a.dev
}

// Allocate reserves a block of the given kind, rounds size up to the
// kind's granularity, resolves it and maps it with attrib.
//
// If any step fails the block is freed again before the error is
// returned, so a failed Allocate never leaks a reservation. The error is
// a *StepError naming the failing step.
func (a *Allocator) Allocate(kind Kind, size uint64, attrib Attrib) (*Block, error) {
	if size == 0 {
		return nil, &StepError{Step: StepReserve, Kind: kind, Err: ErrInvalidSize}
	}
	size = AlignSize(kind, size)
	log := slogger()

	uid, err := a.dev.Reserve(a.label, kind, size)
	log.Debug("vram: reserve", "uid", uid, "kind", kind, "size", size, "err", err)
	if err != nil {
		return nil, &StepError{Step: StepReserve, Kind: kind, Size: size, Err: err}
	}
	a.update(func(s *Stats) { s.Reserves++ })

	region, err := a.dev.Base(uid)
	log.Debug("vram: base", "uid", uid, "addr", fmt.Sprintf("%#x", region.Addr), "err", err)
	if err == nil && uint64(region.Len()) < size {
		err = fmt.Errorf("%w: got %d, want %d", ErrShortRegion, region.Len(), size)
	}
	if err != nil {
		return nil, a.rollback(uid, &StepError{Step: StepBase, Kind: kind, Size: size, Err: err})
	}
	region.Bytes = region.Bytes[:size:size]

	err = a.dev.Map(region, attrib)
	log.Debug("vram: map", "uid", uid, "attrib", attrib, "err", err)
	if err != nil {
		return nil, a.rollback(uid, &StepError{Step: StepMap, Kind: kind, Size: size, Err: err})
	}

	a.update(func(s *Stats) {
		s.Maps++
		s.LiveBlocks++
		s.LiveBytes += size
	})

	return &Block{
		alloc:  a,
		uid:    uid,
		kind:   kind,
		size:   size,
		attrib: attrib,
		region: region,
	}, nil
}

// Stats returns a snapshot of the allocator counters.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

func (a *Allocator) update(fn func(*Stats)) {
	a.mu.Lock()
	fn(&a.stats)
	a.mu.Unlock()
}

// rollback frees uid after a failed step and returns cause, joined with
// the free error if that failed too.
func (a *Allocator) rollback(uid UID, cause *StepError) error {
	a.update(func(s *Stats) { s.Rollbacks++ })

	if err := a.dev.Free(uid); err != nil {
		slogger().Warn("vram: rollback free failed", "uid", uid, "err", err)
		return errors.Join(cause, &StepError{Step: StepFree, Kind: cause.Kind, Size: cause.Size, Err: err})
	}
	a.update(func(s *Stats) { s.Frees++ })
	return cause
}

// release unmaps and frees b. Free is attempted even if unmap fails.
func (a *Allocator) release(b *Block) error {
	var errs []error

	if err := a.dev.Unmap(b.region); err != nil {
		errs = append(errs, &StepError{Step: StepUnmap, Kind: b.kind, Size: b.size, Err: err})
	} else {
		a.update(func(s *Stats) { s.Unmaps++ })
	}

	if err := a.dev.Free(b.uid); err != nil {
		errs = append(errs, &StepError{Step: StepFree, Kind: b.kind, Size: b.size, Err: err})
	} else {
		a.update(func(s *Stats) { s.Frees++ })
	}

	a.update(func(s *Stats) {
		s.LiveBlocks--
		s.LiveBytes -= b.size
	})

	err := errors.Join(errs...)
	if err != nil {
		slogger().Warn("vram: release failed", "uid", b.uid, "err", err)
	} else {
		slogger().Debug("vram: released", "uid", b.uid, "size", b.size)
	}
	return err
}

// Block is a mapped device allocation. It is owned by exactly one holder
// and must be released exactly once.
type Block struct {
	alloc *Allocator

	mu       sync.Mutex
	released bool

	uid    UID
	kind   Kind
	size   uint64
	attrib Attrib
	region Region
}

// UID returns the device handle.
func (b *Block) UID() UID { return b.uid }

// Kind returns the pool the block came from.
func (b *Block) Kind() Kind { return b.kind }

// Size returns the rounded block size in bytes.
func (b *Block) Size() uint64 { return b.size }

// Attrib returns the mapping attributes.
func (b *Block) Attrib() Attrib { return b.attrib }

// Addr returns the device address of the mapping.
func (b *Block) Addr() uintptr { return b.region.Addr }

// Bytes returns the host view of the mapping, or nil after Release.
func (b *Block) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return nil
	}
	return b.region.Bytes
}

// Released reports whether Release has been called.
func (b *Block) Released() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released
}

// Release unmaps the block and returns it to the device.
// A second call returns ErrBlockReleased and touches nothing.
func (b *Block) Release() error {
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		return ErrBlockReleased
	}
	b.released = true
	b.mu.Unlock()

	return b.alloc.release(b)
}
