package growbuf

import (
	"fmt"

	"github.com/joshuapare/growkit/growbuf/alloc"
	"github.com/joshuapare/growkit/internal/checked"
)

// CopyFrom makes b hold exactly src's live elements, in order. The common
// prefix is overwritten in place; a longer source has its tail
// copy-constructed into raw slots, a shorter one leaves b's trailing
// excess destroyed. Capacity grows (to twice the source length) only when
// the source does not fit. b.CopyFrom(b) is a no-op.
func (b *Buffer[T]) CopyFrom(src *Buffer[T]) error {
	if b == src {
		return nil
	}
	if src.n > len(b.slots) {
		capacity, ok := checked.Mul(src.n, 2)
		if !ok {
			return fmt.Errorf("growbuf: copy %d elements: %w", src.n, alloc.ErrBadSize)
		}
		if err := b.regrow(capacity); err != nil {
			return err
		}
	}
	common := min(b.n, src.n)
	for i := range common {
		b.slots[i] = src.slots[i]
	}
	for i := common; i < src.n; i++ {
		b.alloc.Construct(&b.slots[i], src.slots[i])
	}
	if src.n < b.n {
		b.destroy(b.alloc, b.slots[src.n:b.n])
	}
	b.n = src.n
	return nil
}

// MoveFrom releases b's current contents and adopts src's storage,
// capacity, and allocator. src is left empty holding no storage.
// b.MoveFrom(b) is a no-op.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.Destroy()
	b.alloc, b.slots, b.n, b.destroy = src.alloc, src.slots, src.n, src.destroy
	src.release()
}
