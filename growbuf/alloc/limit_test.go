package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit_EnforcesBudget(t *testing.T) {
	la := NewLimit(NewHeap[int](), 10)

	first, err := la.Allocate(6)
	require.NoError(t, err)
	assert.Equal(t, 4, la.Remaining())

	_, err = la.Allocate(5)
	require.ErrorIs(t, err, ErrOutOfMemory, "exceeding the budget must report out-of-memory")
	assert.Equal(t, 4, la.Remaining(), "a rejected request consumes nothing")

	second, err := la.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, 0, la.Remaining())

	la.Deallocate(first)
	la.Deallocate(second)
	assert.Equal(t, 10, la.Remaining(), "released slots return to the budget")
}

func TestLimit_BadSize(t *testing.T) {
	la := NewLimit(NewHeap[int](), 10)
	_, err := la.Allocate(-1)
	require.ErrorIs(t, err, ErrBadSize)
}

func TestLimit_DelegatesLifetime(t *testing.T) {
	la := NewLimit(NewHeap[string](), 4)
	slots, err := la.Allocate(1)
	require.NoError(t, err)

	la.Construct(&slots[0], "v")
	assert.Equal(t, "v", slots[0])
	la.Destroy(&slots[0])
	assert.Empty(t, slots[0])
}
