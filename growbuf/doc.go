// Package growbuf implements a generic growable-array container with
// pluggable memory-allocation strategies.
//
// # Overview
//
// A Buffer is a contiguous, dynamically resized run of homogeneous
// elements. Unlike a plain slice, a Buffer manages element lifetime
// explicitly: slots are raw until constructed, live until destroyed, and
// every one of those transitions goes through the allocator injected at
// construction. That makes the container independent of where its storage
// lives — the Go heap, a bump arena, or an anonymous mapping — and makes
// storage accounting exact and testable.
//
// # Key Types
//
//   - Buffer: the container; construction, sizing, and capacity management
//   - alloc.Allocator: the injected storage capability
//   - Composite: opt-in recursive teardown for aggregate element types
//
// # Construction
//
// Six forms mirror each other's ownership rules:
//
//	b, err := growbuf.New(a)                  // empty, small starting capacity
//	b, err := growbuf.Filled(a, 5, 7)         // five live copies of 7
//	b, err := growbuf.FromSlice(a, src)       // copy-construct a range
//	b, err := growbuf.FromSeq(a, seq)         // consume a single-pass sequence
//	b, err := growbuf.Of(a, 1, 2, 3)          // literal list
//	c, err := b.Clone()                       // value-independent copy
//	d := growbuf.Move(b)                      // steal storage; b is emptied
//
// # Sizing
//
// Reserve replaces the backing storage without changing the live length.
// Resize and ResizeFill change the live length, constructing or destroying
// elements as needed. Destroy tears down every live element in forward
// order and returns the storage to the allocator.
//
// # Errors
//
// The one runtime failure mode is allocation failure, surfaced as
// alloc.ErrOutOfMemory from whichever operation triggered the growth. A
// failed growth leaves the buffer exactly as it was. Reserving below the
// live length is rejected with ErrCapacityBelowLen rather than silently
// truncating.
//
// # Thread Safety
//
// Buffers are sequential value types with no internal locking. Concurrent
// use of one instance must be synchronized externally.
package growbuf
