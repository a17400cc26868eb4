package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounting_Accounting(t *testing.T) {
	ca := NewCounting(NewHeap[int]())

	slots, err := ca.Allocate(5)
	require.NoError(t, err)

	ca.Construct(&slots[0], 1)
	ca.Construct(&slots[1], 2)
	ca.Destroy(&slots[0])

	stats := ca.Stats()
	assert.Equal(t, 1, stats.Allocates)
	assert.Equal(t, 5, stats.SlotsIssued)
	assert.Equal(t, 2, stats.Constructs)
	assert.Equal(t, 1, stats.Destroys)
	assert.Equal(t, 1, ca.Live())
	assert.Equal(t, 5, ca.Outstanding())

	ca.Destroy(&slots[1])
	ca.Deallocate(slots)
	assert.Equal(t, 0, ca.Live())
	assert.Equal(t, 0, ca.Outstanding())
}

func TestCounting_FailedAllocateNotCounted(t *testing.T) {
	ca := NewCounting(NewLimit(NewHeap[int](), 1))

	_, err := ca.Allocate(2)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 0, ca.Stats().Allocates, "failed allocations are not counted as issued")
	assert.Equal(t, 0, ca.Outstanding())
}
