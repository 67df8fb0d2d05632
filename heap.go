package intervalheap

import (
	"cmp"
	"fmt"
	"slices"
)

// Heap is a double-ended priority queue backed by an interval heap. The
// zero value is not usable; construct with New, NewFunc, NewCap, From or
// their variants so that an ordering rule is always present.
//
// Heap is not safe for concurrent use.
type Heap[T any] struct {
	data    []T
	compare func(a, b T) int
}

// New returns an empty heap ordered by the natural order of T.
func New[T cmp.Ordered]() *Heap[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty heap ordered by compare, which must follow
// the cmp.Compare contract: negative when a sorts before b, zero when
// they sort equal, positive otherwise.
func NewFunc[T any](compare func(a, b T) int) *Heap[T] {
	return &Heap[T]{compare: compare}
}

// NewCap returns an empty heap with capacity for n items, ordered by the
// natural order of T.
func NewCap[T cmp.Ordered](n int) *Heap[T] {
	return NewCapFunc(n, cmp.Compare[T])
}

// NewCapFunc returns an empty heap with capacity for n items, ordered by
// compare.
func NewCapFunc[T any](n int, compare func(a, b T) int) *Heap[T] {
	return &Heap[T]{data: make([]T, 0, n), compare: compare}
}

// From builds a heap over values, ordered by the natural order of T.
// The slice is taken over and reordered in place, not copied; the caller
// must not use it afterwards.
func From[T cmp.Ordered](values []T) *Heap[T] {
	return FromFunc(values, cmp.Compare[T])
}

// FromFunc builds a heap over values ordered by compare. The slice is
// taken over and reordered in place, not copied. Each successive prefix
// is repaired by a single sift, so construction is O(n log n).
func FromFunc[T any](values []T, compare func(a, b T) int) *Heap[T] {
	for to := 2; to <= len(values); to++ {
		SiftUp(values[:to], compare)
	}
	h := &Heap[T]{data: values, compare: compare}
	h.check()
	return h
}

// Push adds item to the heap.
func (h *Heap[T]) Push(item T) {
	h.data = append(h.data, item)
	SiftUp(h.data, h.compare)
	h.check()
}

// Append pushes every value in values, reserving capacity for all of
// them up front.
func (h *Heap[T]) Append(values ...T) {
	h.Grow(len(values))
	for _, v := range values {
		h.data = append(h.data, v)
		SiftUp(h.data, h.compare)
	}
	h.check()
}

// PopMin removes and returns the smallest item. The second return is
// false if the heap is empty.
func (h *Heap[T]) PopMin() (T, bool) {
	var zero T
	switch len(h.data) {
	case 0:
		return zero, false
	case 1, 2:
		// offset 0 is the min; with at most one other item no repair
		// is needed after the swap-removal.
		return h.swapRemove(0), true
	default:
		min := h.swapRemove(0)
		SiftDownMin(h.data, h.compare)
		h.check()
		return min, true
	}
}

// PopMax removes and returns the greatest item. The second return is
// false if the heap is empty.
func (h *Heap[T]) PopMax() (T, bool) {
	var zero T
	switch len(h.data) {
	case 0:
		return zero, false
	case 1, 2:
		// the max is the structurally last item, plain truncation.
		return h.swapRemove(len(h.data) - 1), true
	default:
		max := h.swapRemove(1)
		SiftDownMax(h.data, h.compare)
		h.check()
		return max, true
	}
}

// Min returns the smallest item without removing it. The second return
// is false if the heap is empty.
func (h *Heap[T]) Min() (T, bool) {
	var zero T
	if len(h.data) == 0 {
		return zero, false
	}
	return h.data[0], true
}

// Max returns the greatest item without removing it. The second return
// is false if the heap is empty.
func (h *Heap[T]) Max() (T, bool) {
	var zero T
	switch len(h.data) {
	case 0:
		return zero, false
	case 1:
		return h.data[0], true
	default:
		return h.data[1], true
	}
}

// MinMax returns the smallest and greatest items without removing them.
// The third return is false if the heap is empty. A single-item heap
// reports that item as both.
func (h *Heap[T]) MinMax() (T, T, bool) {
	var zero T
	switch len(h.data) {
	case 0:
		return zero, zero, false
	case 1:
		return h.data[0], h.data[0], true
	default:
		return h.data[0], h.data[1], true
	}
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// IsEmpty reports whether the heap contains no items.
func (h *Heap[T]) IsEmpty() bool { return len(h.data) == 0 }

// Cap returns the number of items the heap can hold without reallocating.
func (h *Heap[T]) Cap() int { return cap(h.data) }

// Grow reserves capacity for at least n more items. The backing array
// may grow by more than n to amortize future growth.
func (h *Heap[T]) Grow(n int) {
	h.data = slices.Grow(h.data, n)
}

// GrowExact reserves capacity for exactly n more items beyond the
// current length, reallocating only if the current capacity is smaller.
// Prefer Grow if further insertions are expected.
func (h *Heap[T]) GrowExact(n int) {
	if cap(h.data)-len(h.data) >= n {
		return
	}
	data := make([]T, len(h.data), len(h.data)+n)
	copy(data, h.data)
	h.data = data
}

// Clip discards as much unused capacity as possible.
func (h *Heap[T]) Clip() {
	h.data = slices.Clip(h.data)
}

// Clear removes all items, keeping the allocated capacity. Vacated slots
// are zeroed so the backing array does not pin references.
func (h *Heap[T]) Clear() {
	clear(h.data)
	h.data = h.data[:0]
}

// Clone returns a heap with a copy of the contents, sharing the ordering
// rule.
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{data: slices.Clone(h.data), compare: h.compare}
}

// String formats the contents in storage order.
func (h *Heap[T]) String() string {
	return fmt.Sprintf("%v", h.data)
}

// swapRemove removes and returns the item at offset i by moving the
// structurally last item into its place and truncating. The vacated
// slot is zeroed so the backing array does not pin references.
func (h *Heap[T]) swapRemove(i int) T {
	var zero T
	n := len(h.data) - 1
	out := h.data[i]
	h.data[i] = h.data[n]
	h.data[n] = zero
	h.data = h.data[:n]
	return out
}

// check asserts full structural validity in heapcheck builds and is a
// no-op otherwise.
func (h *Heap[T]) check() {
	if !invariantChecks {
		return
	}
	if !Valid(h.data, h.compare) {
		panic("intervalheap: structural invariants violated")
	}
}
