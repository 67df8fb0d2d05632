package intervalheap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	values := []int{5, 1, 6, 4}
	h := From(slices.Clone(values))

	got := slices.Collect(h.All())
	slices.Sort(got)
	assert.Equal(t, []int{1, 4, 5, 6}, got)

	// Restartable: a second range sees the same items, and the heap is
	// untouched.
	assert.Len(t, slices.Collect(h.All()), 4)
	assert.Equal(t, 4, h.Len())
}

func TestDrain(t *testing.T) {
	h := From([]int{5, 1, 6, 4})

	got := slices.Collect(h.Drain())
	slices.Sort(got)
	assert.Equal(t, []int{1, 4, 5, 6}, got)
	assert.True(t, h.IsEmpty())
}

func TestDrainEarlyBreakEmpties(t *testing.T) {
	h := From([]int{5, 1, 6, 4})

	n := 0
	for range h.Drain() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
	// Stopping early still consumes the remainder.
	assert.True(t, h.IsEmpty())
}

func TestExtend(t *testing.T) {
	h := From([]int{9, 0})
	h.Extend(slices.Values([]int{5, 1, 6, 4}))

	require.Equal(t, 6, h.Len())
	require.True(t, Valid(h.data, h.compare))
	min, max, ok := h.MinMax()
	require.True(t, ok)
	assert.Equal(t, 0, min)
	assert.Equal(t, 9, max)
}

func TestDrainThenReuse(t *testing.T) {
	h := From([]int{2, 1, 3})
	for range h.Drain() {
	}

	h.Push(8)
	min, max, ok := h.MinMax()
	require.True(t, ok)
	assert.Equal(t, 8, min)
	assert.Equal(t, 8, max)
}
