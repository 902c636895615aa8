package vram

import (
	"errors"
	"fmt"
)

// Allocator errors.
var (
	// ErrInvalidSize is returned when a zero-byte allocation is requested.
	ErrInvalidSize = errors.New("vram: invalid size")

	// ErrNilDevice is returned when an allocator is built without a device.
	ErrNilDevice = errors.New("vram: device is nil")

	// ErrBlockReleased is returned when a block is released twice.
	ErrBlockReleased = errors.New("vram: block already released")
)

// Step names one stage of an allocation.
type Step string

// Allocation stages, in execution order.
const (
	StepReserve Step = "reserve"
	StepBase    Step = "base"
	StepMap     Step = "map"
	StepUnmap   Step = "unmap"
	StepFree    Step = "free"
)

// StepError reports which allocation stage failed.
type StepError struct {
	Step Step
	Kind Kind
	Size uint64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("vram: %s %s block of %d bytes: %v", e.Step, e.Kind, e.Size, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
