package alloc

// Allocator is the capability object a buffer routes every memory operation
// through: raw storage acquisition and release, plus per-slot construction
// and destruction. Implementations decide where slots live (runtime heap,
// bump arena, anonymous mapping) but all share the same contract:
//
//   - Allocate returns storage for n slots. The slots are raw from the
//     container's point of view: nothing may be read from them until
//     Construct has initialized them. Failure to obtain storage is
//     reported as ErrOutOfMemory.
//   - Deallocate releases storage previously returned by Allocate. Passing
//     anything else is a contract violation.
//   - Construct in-place initializes one raw slot with value, making it live.
//   - Destroy tears down one live slot, leaving it raw again.
//
// Allocators are not safe for concurrent use unless documented otherwise.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(slots []T)
	Construct(slot *T, value T)
	Destroy(slot *T)
}

// Default returns the allocator used when callers have no placement
// preference: runtime-heap backed storage.
func Default[T any]() Allocator[T] {
	return NewHeap[T]()
}

// lifetime provides the value-semantics Construct and Destroy shared by the
// storage strategies in this package. Destroy clears the slot so anything
// it referenced becomes collectable.
type lifetime[T any] struct{}

func (lifetime[T]) Construct(slot *T, value T) {
	*slot = value
}

func (lifetime[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}
