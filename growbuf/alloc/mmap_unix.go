//go:build unix

package alloc

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/growkit/internal/checked"
)

// MmapAllocator places each allocation in its own anonymous private
// mapping. Deallocate unmaps immediately instead of waiting for the
// collector, which suits very large buffers whose storage should be
// returned to the OS the moment it is released.
//
// Mapped memory is untyped: the collector does not trace pointers stored
// in mapped slots. Element types that contain pointers must keep their
// referents reachable elsewhere, or use HeapAllocator instead.
// Not safe for concurrent use.
type MmapAllocator[T any] struct {
	lifetime[T]
	regions map[uintptr][]byte // base slot address -> backing mapping
}

// NewMmap returns an allocator backed by anonymous mappings.
func NewMmap[T any]() *MmapAllocator[T] {
	return &MmapAllocator[T]{regions: make(map[uintptr][]byte)}
}

func (m *MmapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrBadSize, n)
	}
	var zero T
	size, ok := checked.Total(n, int(unsafe.Sizeof(zero)), os.Getpagesize())
	if !ok {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrBadSize, n, unsafe.Sizeof(zero))
	}
	if size == 0 {
		// Zero-sized requests still need n valid slot addresses.
		return make([]T, n), nil
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrOutOfMemory, size, err)
	}
	base := uintptr(unsafe.Pointer(&data[0]))
	m.regions[base] = data
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n), nil
}

func (m *MmapAllocator[T]) Deallocate(slots []T) {
	if len(slots) == 0 {
		return
	}
	base := uintptr(unsafe.Pointer(&slots[0]))
	data, ok := m.regions[base]
	if !ok {
		// Not one of ours: zero-byte allocations come from the runtime.
		return
	}
	delete(m.regions, base)
	_ = unix.Munmap(data)
}

// Outstanding returns the number of mappings issued but not yet unmapped.
func (m *MmapAllocator[T]) Outstanding() int {
	return len(m.regions)
}

// Close unmaps every outstanding mapping. Slots handed out earlier must no
// longer be used.
func (m *MmapAllocator[T]) Close() error {
	var firstErr error
	for base, data := range m.regions {
		delete(m.regions, base)
		if err := unix.Munmap(data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
