package intervalheap

// IntoSlice consumes the heap and returns the backing slice in storage
// order, which is arbitrary with respect to the ordering rule. The heap
// is empty afterwards.
func (h *Heap[T]) IntoSlice() []T {
	out := h.data
	h.data = nil
	return out
}

// IntoSortedSlice consumes the heap and returns its items sorted
// ascending. The backing slice is reused as both the shrinking heap and
// the growing sorted tail, so no extra allocation is made: each round
// swaps the current max (offset 1) with the slot just past the
// considered range and repairs the shrunk range.
func (h *Heap[T]) IntoSortedSlice() []T {
	v := h.data
	h.data = nil
	for hsize := len(v) - 1; hsize >= 2; hsize-- {
		v[1], v[hsize] = v[hsize], v[1]
		SiftDownMax(v[:hsize], h.compare)
	}
	return v
}
