package growbuf

import (
	"fmt"
	"iter"

	"github.com/joshuapare/growkit/growbuf/alloc"
	"github.com/joshuapare/growkit/internal/checked"
)

// defaultCapacity is the slot count a fresh empty buffer starts with.
const defaultCapacity = 4

// Buffer is a contiguous, dynamically resized sequence of T. Every memory
// operation is routed through the allocator supplied at construction: raw
// slot acquisition and release, and per-element construction and
// destruction. slots[:n] holds the live elements in insertion order;
// slots[n:] is raw, unconstructed storage.
//
// A Buffer is a sequential value type: it performs no internal locking,
// and concurrent use of one instance must be synchronized by the caller.
// The allocator is fixed for the buffer's lifetime except when replaced
// wholesale by MoveFrom.
type Buffer[T any] struct {
	alloc   alloc.Allocator[T]
	slots   []T
	n       int
	destroy destroyStrategy[T]
}

// New returns an empty buffer holding a small starting allocation.
func New[T any](a alloc.Allocator[T]) (*Buffer[T], error) {
	slots, err := a.Allocate(defaultCapacity)
	if err != nil {
		return nil, fmt.Errorf("growbuf: new: %w", err)
	}
	return &Buffer[T]{alloc: a, slots: slots, destroy: destroyerFor[T]()}, nil
}

// Filled returns a buffer of n copies of value. Capacity is provisioned at
// twice the requested size so the next growth steps are free.
func Filled[T any](a alloc.Allocator[T], n int, value T) (*Buffer[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("growbuf: filled: %w: %d", ErrNegativeCount, n)
	}
	capacity, ok := checked.Mul(n, 2)
	if !ok {
		return nil, fmt.Errorf("growbuf: filled %d: %w", n, alloc.ErrBadSize)
	}
	slots, err := a.Allocate(capacity)
	if err != nil {
		return nil, fmt.Errorf("growbuf: filled %d: %w", n, err)
	}
	for i := range n {
		a.Construct(&slots[i], value)
	}
	return &Buffer[T]{alloc: a, slots: slots, n: n, destroy: destroyerFor[T]()}, nil
}

// FromSlice returns a buffer copy-constructed from src, one slot per
// element, in order.
func FromSlice[T any](a alloc.Allocator[T], src []T) (*Buffer[T], error) {
	slots, err := a.Allocate(len(src))
	if err != nil {
		return nil, fmt.Errorf("growbuf: from %d elements: %w", len(src), err)
	}
	for i, v := range src {
		a.Construct(&slots[i], v)
	}
	return &Buffer[T]{alloc: a, slots: slots, n: len(src), destroy: destroyerFor[T]()}, nil
}

// FromSeq returns a buffer constructed from a single-pass sequence. The
// element count is not known up front, so the buffer doubles its capacity
// whenever it fills while the sequence is consumed.
func FromSeq[T any](a alloc.Allocator[T], seq iter.Seq[T]) (*Buffer[T], error) {
	b, err := New(a)
	if err != nil {
		return nil, err
	}
	for v := range seq {
		if err := b.push(v); err != nil {
			b.Destroy()
			return nil, err
		}
	}
	return b, nil
}

// Of returns a buffer holding the given values in order.
func Of[T any](a alloc.Allocator[T], values ...T) (*Buffer[T], error) {
	return FromSlice(a, values)
}

// Clone returns a copy-constructed buffer: a fresh allocation from the
// same allocator holding copies of b's live elements. The clone and the
// original are value-independent afterwards.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	return FromSlice(b.alloc, b.slots[:b.n])
}

// Move returns a buffer that has taken ownership of src's storage,
// capacity, and allocator. src is left empty holding no storage; the only
// operation it supports afterwards is Destroy, which is a no-op.
func Move[T any](src *Buffer[T]) *Buffer[T] {
	dst := &Buffer[T]{alloc: src.alloc, slots: src.slots, n: src.n, destroy: src.destroy}
	src.release()
	return dst
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return b.n
}

// Cap returns the number of slots in the owned storage.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Destroy tears down every live element in forward order and returns the
// owned storage to the allocator, leaving b empty. Destroying an already
// emptied buffer, including a moved-from source, is a no-op.
func (b *Buffer[T]) Destroy() {
	if b.alloc == nil {
		return
	}
	b.destroy(b.alloc, b.slots[:b.n])
	b.alloc.Deallocate(b.slots)
	b.release()
}

// release drops ownership without touching the elements or the storage.
func (b *Buffer[T]) release() {
	b.alloc = nil
	b.slots = nil
	b.n = 0
}

// push appends one element, doubling capacity when full. Only sequence
// construction needs it; the public surface has no append.
func (b *Buffer[T]) push(v T) error {
	if b.n == len(b.slots) {
		capacity := len(b.slots) * 2
		if capacity == 0 {
			capacity = defaultCapacity
		}
		if err := b.regrow(capacity); err != nil {
			return err
		}
	}
	b.alloc.Construct(&b.slots[b.n], v)
	b.n++
	return nil
}
