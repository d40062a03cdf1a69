// Package minheap defines the sentinel errors of the indexed min-heap.
//
// All sentinels except ErrBadCapacity are used as panic values: violating a
// heap precondition is a programming bug in the caller, not a recoverable
// runtime condition, so the heap fails fast instead of corrupting its
// array/position-index consistency. Recover-and-compare with errors.Is if a
// boundary must translate them.
package minheap

import "errors"

var (
	// ErrBadCapacity indicates that New was given a negative capacity.
	// Returned (not panicked): construction is a recoverable boundary.
	ErrBadCapacity = errors.New("minheap: capacity must be non-negative")

	// ErrOutOfRange indicates an identifier outside [0, Cap()).
	ErrOutOfRange = errors.New("minheap: identifier out of range")

	// ErrDuplicate indicates an Insert of an identifier already in the heap.
	// An identifier may be re-inserted only after it has been popped.
	ErrDuplicate = errors.New("minheap: identifier already present")

	// ErrAbsent indicates a DecreaseKey on an identifier not in the heap.
	ErrAbsent = errors.New("minheap: identifier not present")

	// ErrEmptyHeap indicates a PopMin on an empty heap.
	ErrEmptyHeap = errors.New("minheap: pop from empty heap")

	// ErrShortPriorities indicates a priority slice shorter than the heap's
	// identifier universe; every identifier must be indexable.
	ErrShortPriorities = errors.New("minheap: priority slice shorter than capacity")
)
