package intervalheap

import (
	"iter"
	"slices"
)

// All returns an iterator over the items in storage order, which is
// arbitrary with respect to the ordering rule. The sequence is
// restartable; each range restarts from the first slot. The heap must
// not be mutated while iterating.
func (h *Heap[T]) All() iter.Seq[T] {
	return slices.Values(h.data)
}

// Drain returns a single-use iterator that yields the items in storage
// order while emptying the heap. The heap is empty once the sequence is
// ranged over, even if the caller stops early.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range h.data {
			if !yield(v) {
				break
			}
		}
		h.Clear()
	}
}

// Extend pushes every item produced by seq. A sequence carries no length
// hint, so callers that know the count should Grow first.
func (h *Heap[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		h.data = append(h.data, v)
		SiftUp(h.data, h.compare)
	}
	h.check()
}
