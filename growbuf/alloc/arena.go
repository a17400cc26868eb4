package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/growkit/internal/checked"
)

// DefaultChunkSize is the chunk size a new arena grows by (64 KiB).
const DefaultChunkSize = 64 << 10

// arenaChunk is one contiguous run of arena storage. used is the byte
// offset of the next carve within buf.
type arenaChunk struct {
	buf  []byte
	used int
}

// Arena is a chunked bump allocator: storage is acquired from the runtime
// in large chunks and carved out sequentially. Individual carves are never
// returned; Reset rewinds every chunk for reuse and Release drops them all.
// Not safe for concurrent use.
type Arena struct {
	chunks    []arenaChunk
	chunkSize int
	released  bool
}

// NewArena returns an arena that grows in chunks of chunkSize bytes.
// Values <= 0 select DefaultChunkSize. The first chunk is acquired lazily
// on the first carve.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: chunkSize}
}

// carve returns size bytes aligned to align, growing by a new chunk when
// the current one cannot fit the request.
func (a *Arena) carve(size, align int) ([]byte, error) {
	if a.released {
		return nil, ErrReleased
	}
	if len(a.chunks) > 0 {
		c := &a.chunks[len(a.chunks)-1]
		off := alignUp(c.used, align)
		if end, ok := checked.Add(off, size); ok && end <= len(c.buf) {
			c.used = end
			return c.buf[off:end:end], nil
		}
	}
	req, ok := checked.Add(size, align)
	if !ok {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadSize, size)
	}
	a.grow(req)
	c := &a.chunks[len(a.chunks)-1]
	off := alignUp(c.used, align)
	end := off + size
	c.used = end
	return c.buf[off:end:end], nil
}

// grow appends a chunk of at least min bytes.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, arenaChunk{buf: make([]byte, size)})
}

// Reset rewinds every chunk to empty but keeps the storage for reuse.
// Previously carved regions must no longer be used.
func (a *Arena) Reset() {
	for i := range a.chunks {
		a.chunks[i].used = 0
	}
}

// Release drops every chunk. Further carves fail with ErrReleased.
func (a *Arena) Release() {
	a.chunks = nil
	a.released = true
}

func alignUp(off, align int) int {
	return (off + align - 1) &^ (align - 1)
}

// ArenaAllocator carves typed slots out of an Arena. Deallocate is a no-op;
// carved storage lives until the arena is reset or released, so one arena
// can back many short-lived buffers that are all dropped at once.
//
// Chunk memory is untyped: the collector does not trace pointers stored in
// arena-backed slots. Element types that contain pointers must keep their
// referents reachable elsewhere, or use HeapAllocator instead.
type ArenaAllocator[T any] struct {
	lifetime[T]
	arena *Arena
}

// NewArenaAllocator returns an allocator carving slots of T from arena.
func NewArenaAllocator[T any](arena *Arena) ArenaAllocator[T] {
	return ArenaAllocator[T]{arena: arena}
}

func (aa ArenaAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrBadSize, n)
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	total, ok := checked.Mul(n, elemSize)
	if !ok {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrBadSize, n, elemSize)
	}
	if total == 0 {
		// Zero bytes of storage still needs n valid slot addresses
		// when T is zero-sized.
		return make([]T, n), nil
	}
	raw, err := aa.arena.carve(total, align)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n), nil
}

func (ArenaAllocator[T]) Deallocate(slots []T) {}
