package slotmap

import "errors"

// Sentinel errors returned by slotmap operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, slotmap.ErrTypeTooSmall) {
//	    // pick a wider element type
//	}
var (
	// ErrFull indicates Add failed because the map is at capacity and
	// growth is disabled ([Fixed]) or the hard maximum capacity has
	// been reached under [Doubling].
	ErrFull = errors.New("slotmap: full")

	// ErrTypeTooSmall indicates the element type is narrower than a
	// machine word and cannot share a cell with an indirection index.
	//
	// Recovery: widen the element type, or pad it to at least 8 bytes.
	ErrTypeTooSmall = errors.New("slotmap: element type too small")

	// ErrNotBitwiseCopyable indicates the element type contains a
	// pointer, interface, slice, map, channel, function, or string —
	// something unsafe to relocate with a raw byte copy.
	//
	// Recovery: use a plain value type (numbers, arrays, and structs
	// thereof).
	ErrNotBitwiseCopyable = errors.New("slotmap: element type is not bitwise-copyable")

	// ErrInvalidCapacity indicates a capacity above [MaxCapacity] was
	// passed to New.
	ErrInvalidCapacity = errors.New("slotmap: invalid capacity")
)
