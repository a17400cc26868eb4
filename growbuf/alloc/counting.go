package alloc

// Stats is a snapshot of a CountingAllocator's call accounting.
type Stats struct {
	Allocates   int // Allocate calls that succeeded
	SlotsIssued int // total slots handed out by those calls
	Deallocates int // Deallocate calls
	SlotsFreed  int // total slots returned by those calls
	Constructs  int // Construct calls
	Destroys    int // Destroy calls
}

// CountingAllocator wraps another allocator and keeps exact call
// accounting. A balanced count after teardown proves that every
// constructed element was destroyed exactly once and every allocation was
// released exactly once.
type CountingAllocator[T any] struct {
	inner Allocator[T]
	stats Stats
}

// NewCounting wraps inner with call accounting.
func NewCounting[T any](inner Allocator[T]) *CountingAllocator[T] {
	return &CountingAllocator[T]{inner: inner}
}

// Stats returns the current accounting snapshot.
func (c *CountingAllocator[T]) Stats() Stats {
	return c.stats
}

// Live returns the number of elements constructed but not yet destroyed.
func (c *CountingAllocator[T]) Live() int {
	return c.stats.Constructs - c.stats.Destroys
}

// Outstanding returns the number of slots issued but not yet freed.
func (c *CountingAllocator[T]) Outstanding() int {
	return c.stats.SlotsIssued - c.stats.SlotsFreed
}

func (c *CountingAllocator[T]) Allocate(n int) ([]T, error) {
	slots, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	c.stats.Allocates++
	c.stats.SlotsIssued += len(slots)
	return slots, nil
}

func (c *CountingAllocator[T]) Deallocate(slots []T) {
	c.stats.Deallocates++
	c.stats.SlotsFreed += len(slots)
	c.inner.Deallocate(slots)
}

func (c *CountingAllocator[T]) Construct(slot *T, value T) {
	c.stats.Constructs++
	c.inner.Construct(slot, value)
}

func (c *CountingAllocator[T]) Destroy(slot *T) {
	c.stats.Destroys++
	c.inner.Destroy(slot)
}
