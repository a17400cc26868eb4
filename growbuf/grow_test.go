package growbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/growkit/growbuf/alloc"
)

func TestReserve_PreservesElements(t *testing.T) {
	b, err := Of(alloc.Default[int](), 1, 2, 3)
	require.NoError(t, err)
	defer b.Destroy()

	require.NoError(t, b.Reserve(32))
	assert.Equal(t, 32, b.Cap())
	assert.Equal(t, 3, b.Len(), "Reserve must not change the live length")
	assert.Equal(t, []int{1, 2, 3}, elements(b), "elements survive the transplant in order")
}

func TestReserve_ShrinkToLen(t *testing.T) {
	b, err := Filled(alloc.Default[int](), 4, 1)
	require.NoError(t, err)
	defer b.Destroy()

	require.Equal(t, 8, b.Cap())
	require.NoError(t, b.Reserve(4), "shrinking down to the live length is allowed")
	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, []int{1, 1, 1, 1}, elements(b))
}

func TestReserve_BelowLenRejected(t *testing.T) {
	b, err := Of(alloc.Default[int](), 1, 2, 3)
	require.NoError(t, err)
	defer b.Destroy()

	err = b.Reserve(2)
	require.ErrorIs(t, err, ErrCapacityBelowLen)
	assert.Equal(t, []int{1, 2, 3}, elements(b), "a rejected Reserve changes nothing")
}

func TestReserve_Negative(t *testing.T) {
	b, err := New(alloc.Default[int]())
	require.NoError(t, err)
	defer b.Destroy()

	require.ErrorIs(t, b.Reserve(-1), ErrNegativeCount)
}

func TestResize_Grow(t *testing.T) {
	b, err := Of(alloc.Default[int](), 1, 2, 3)
	require.NoError(t, err)
	defer b.Destroy()

	require.NoError(t, b.Resize(5))
	assert.Equal(t, []int{1, 2, 3, 0, 0}, elements(b), "new tail slots hold the zero value")
	assert.Equal(t, 10, b.Cap(), "resize re-provisions capacity at twice the new length")
}

func TestResizeFill_Grow(t *testing.T) {
	b, err := Of(alloc.Default[int](), 1, 2, 3)
	require.NoError(t, err)
	defer b.Destroy()

	require.NoError(t, b.ResizeFill(6, 9))
	assert.Equal(t, []int{1, 2, 3, 9, 9, 9}, elements(b))
}

func TestResize_Shrink(t *testing.T) {
	ca := newCounting[int]()
	b, err := Of[int](ca, 1, 2, 3, 4, 5)
	require.NoError(t, err)

	destroysBefore := ca.Stats().Destroys
	require.NoError(t, b.Resize(2))

	assert.Equal(t, []int{1, 2}, elements(b), "leading elements unchanged and in order")
	// Three trailing elements destroyed, plus the two survivors torn down
	// in the old storage after being transplanted.
	assert.Equal(t, destroysBefore+5, ca.Stats().Destroys)
	assert.Equal(t, 2, ca.Live(), "exactly the live elements remain constructed")

	b.Destroy()
	assert.Equal(t, 0, ca.Live())
	assert.Equal(t, 0, ca.Outstanding())
}

func TestResize_ToZero(t *testing.T) {
	b, err := Of(alloc.Default[int](), 1, 2, 3)
	require.NoError(t, err)
	defer b.Destroy()

	require.NoError(t, b.Resize(0))
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())

	// The buffer is still usable after shrinking to nothing.
	require.NoError(t, b.Resize(2))
	assert.Equal(t, []int{0, 0}, elements(b))
}

func TestResize_Negative(t *testing.T) {
	b, err := New(alloc.Default[int]())
	require.NoError(t, err)
	defer b.Destroy()

	require.ErrorIs(t, b.Resize(-3), ErrNegativeCount)
}

func TestGrow_AllocationFailure(t *testing.T) {
	// Budget covers the initial storage and nothing more.
	la := alloc.NewLimit(alloc.NewHeap[int](), 8)
	b, err := Of[int](la, 1, 2, 3)
	require.NoError(t, err)

	err = b.Reserve(100)
	require.ErrorIs(t, err, alloc.ErrOutOfMemory, "growth past the budget must surface out-of-memory")

	// A failed growth leaves the buffer exactly as it was.
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{1, 2, 3}, elements(b))

	b.Destroy()
	assert.Equal(t, 8, la.Remaining(), "destroyed buffer returns its slots to the budget")
}

func TestCapacityCoversLength_Invariant(t *testing.T) {
	b, err := New(alloc.Default[int]())
	require.NoError(t, err)
	defer b.Destroy()

	steps := []func() error{
		func() error { return b.Resize(3) },
		func() error { return b.Reserve(9) },
		func() error { return b.ResizeFill(7, 1) },
		func() error { return b.Resize(1) },
		func() error { return b.Resize(0) },
	}
	for i, step := range steps {
		require.NoError(t, step())
		assert.GreaterOrEqual(t, b.Cap(), b.Len(), "capacity must cover length after step %d", i)
	}
}

func BenchmarkResizeGrow(b *testing.B) {
	a := alloc.Default[int]()
	for b.Loop() {
		buf, _ := New(a)
		_ = buf.Resize(1024)
		buf.Destroy()
	}
}

func BenchmarkFromSlice(b *testing.B) {
	a := alloc.Default[int]()
	src := make([]int, 1024)
	for b.Loop() {
		buf, _ := FromSlice(a, src)
		buf.Destroy()
	}
}

func BenchmarkFromSlice_Arena(b *testing.B) {
	ar := alloc.NewArena(1 << 20)
	a := alloc.NewArenaAllocator[int](ar)
	src := make([]int, 1024)
	for b.Loop() {
		buf, _ := FromSlice[int](a, src)
		buf.Destroy()
		ar.Reset()
	}
}
