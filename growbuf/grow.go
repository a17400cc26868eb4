package growbuf

import (
	"fmt"

	"github.com/joshuapare/growkit/growbuf/alloc"
	"github.com/joshuapare/growkit/internal/checked"
)

// Reserve replaces the backing storage with a fresh allocation of capacity
// slots, transplanting the live elements: each is copy-constructed into
// the new storage, destroyed in the old, and the old storage is released.
// The live length is unchanged. Reserving below the current length fails
// with ErrCapacityBelowLen; shrinking capacity never discards elements.
func (b *Buffer[T]) Reserve(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("growbuf: reserve: %w: %d", ErrNegativeCount, capacity)
	}
	if capacity < b.n {
		return fmt.Errorf("growbuf: reserve %d below length %d: %w", capacity, b.n, ErrCapacityBelowLen)
	}
	return b.regrow(capacity)
}

// Resize sets the live length to n, filling any new tail slots with the
// zero value.
func (b *Buffer[T]) Resize(n int) error {
	var zero T
	return b.ResizeFill(n, zero)
}

// ResizeFill sets the live length to n. Growth fill-constructs copies of
// value at the tail; shrinking destroys the trailing excess before the
// storage moves, so no live element is ever dropped by the transplant.
// Either way the backing storage is re-provisioned at twice the new
// length, the same amortization sized construction uses.
func (b *Buffer[T]) ResizeFill(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("growbuf: resize: %w: %d", ErrNegativeCount, n)
	}
	capacity, ok := checked.Mul(n, 2)
	if !ok {
		return fmt.Errorf("growbuf: resize %d: %w", n, alloc.ErrBadSize)
	}
	if n < b.n {
		b.destroy(b.alloc, b.slots[n:b.n])
		b.n = n
	}
	if err := b.regrow(capacity); err != nil {
		return err
	}
	for i := b.n; i < n; i++ {
		b.alloc.Construct(&b.slots[i], value)
	}
	b.n = n
	return nil
}

// regrow moves the live elements into a fresh allocation of capacity
// slots. Callers guarantee capacity >= b.n. The new storage is acquired
// before any existing state is touched, so a failed allocation leaves the
// buffer exactly as it was.
func (b *Buffer[T]) regrow(capacity int) error {
	next, err := b.alloc.Allocate(capacity)
	if err != nil {
		return fmt.Errorf("growbuf: grow to %d slots: %w", capacity, err)
	}
	for i := range b.n {
		b.alloc.Construct(&next[i], b.slots[i])
	}
	b.destroy(b.alloc, b.slots[:b.n])
	b.alloc.Deallocate(b.slots)
	b.slots = next
	return nil
}
