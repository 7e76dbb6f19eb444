// Package buffer provides the caller-owned output buffers filled by the
// geometry compiler.
//
// A frame writes into three buffers (vertex bytes, indices, batches). The
// caller owns them, clears them between frames and chooses the growth
// policy: [Growable] reallocates transparently, [Fixed] works inside a
// preallocated slice and panics with a [*CapacityError] when a frame does
// not fit.
package buffer

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is wrapped by every CapacityError.
var ErrCapacityExceeded = errors.New("buffer: capacity exceeded")

// CapacityError reports a write that did not fit in a fixed buffer.
type CapacityError struct {
	// What names the overflowing resource, e.g. "vertices" or "indices".
	What      string
	Requested int
	Capacity  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("buffer: %s capacity exceeded: need %d, have %d", e.What, e.Requested, e.Capacity)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// Buffer is an append-only sequence of E that can be cleared and reused.
type Buffer[E any] interface {
	// Len returns the number of elements written.
	Len() int

	// Cap returns the number of elements the buffer can hold before it
	// must grow (or fail, for fixed buffers).
	Cap() int

	// Alloc appends n zero elements and returns them for in-place writes.
	Alloc(n int) []E

	// Push appends one element.
	Push(e E)

	// Clear resets the length to zero and keeps the storage.
	Clear()

	// Elements returns the written elements. The slice aliases the
	// buffer and is valid until the next write.
	Elements() []E

	// Last returns the most recently written element or nil if empty.
	Last() *E
}
