//go:build !unix

package alloc

import "fmt"

// MmapAllocator falls back to runtime-backed storage on platforms without
// anonymous mappings. The API matches the unix implementation so callers
// build the same way everywhere.
type MmapAllocator[T any] struct {
	lifetime[T]
}

// NewMmap returns the fallback allocator.
func NewMmap[T any]() *MmapAllocator[T] {
	return &MmapAllocator[T]{}
}

func (m *MmapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrBadSize, n)
	}
	return make([]T, n), nil
}

func (m *MmapAllocator[T]) Deallocate(slots []T) {}

// Outstanding always reports zero: the runtime owns the storage.
func (m *MmapAllocator[T]) Outstanding() int {
	return 0
}

// Close is a no-op on the fallback.
func (m *MmapAllocator[T]) Close() error {
	return nil
}
