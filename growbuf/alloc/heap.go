package alloc

import "fmt"

// HeapAllocator satisfies Allocator with storage from the Go runtime.
// Deallocate drops the reference and leaves reclamation to the collector,
// so it never fails and never blocks.
type HeapAllocator[T any] struct {
	lifetime[T]
}

// NewHeap returns a runtime-heap backed allocator.
func NewHeap[T any]() HeapAllocator[T] {
	return HeapAllocator[T]{}
}

func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrBadSize, n)
	}
	return make([]T, n), nil
}

func (HeapAllocator[T]) Deallocate(slots []T) {}
