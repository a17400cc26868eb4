package alloc

import "fmt"

// LimitAllocator enforces a slot budget on an inner allocator. An Allocate
// that would exceed the budget fails with ErrOutOfMemory before the inner
// allocator is consulted; Deallocate returns the released slots to the
// budget. It gives callers a hard footprint bound and gives tests a
// deterministic allocation-failure surface.
type LimitAllocator[T any] struct {
	inner  Allocator[T]
	budget int
}

// NewLimit wraps inner with a budget of maxSlots slots outstanding at once.
func NewLimit[T any](inner Allocator[T], maxSlots int) *LimitAllocator[T] {
	if maxSlots < 0 {
		maxSlots = 0
	}
	return &LimitAllocator[T]{inner: inner, budget: maxSlots}
}

// Remaining returns the number of slots still available under the budget.
func (l *LimitAllocator[T]) Remaining() int {
	return l.budget
}

func (l *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrBadSize, n)
	}
	if n > l.budget {
		return nil, fmt.Errorf("%w: need %d slots, %d left in budget", ErrOutOfMemory, n, l.budget)
	}
	slots, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.budget -= n
	return slots, nil
}

func (l *LimitAllocator[T]) Deallocate(slots []T) {
	l.budget += len(slots)
	l.inner.Deallocate(slots)
}

func (l *LimitAllocator[T]) Construct(slot *T, value T) {
	l.inner.Construct(slot, value)
}

func (l *LimitAllocator[T]) Destroy(slot *T) {
	l.inner.Destroy(slot)
}
