package intervalheap

// PeekMut grants exclusive write access to the current min or max slot,
// obtained from Heap.MinMut or Heap.MaxMut. The caller may mutate the
// item freely through Value; Close restores the structure and must run
// on every exit path, so the intended shape is:
//
//	if p, ok := h.MaxMut(); ok {
//		defer p.Close()
//		*p.Value() = next
//	}
//
// Pop destructively takes the item instead; a handle whose item has been
// taken is spent and Close becomes a no-op. Using Value or Pop on a
// spent handle is a caller bug and panics.
//
// The heap must not be accessed through any other path while a handle is
// open.
type PeekMut[T any] struct {
	h     *Heap[T]
	max   bool
	spent bool
}

// MinMut returns a handle on the smallest item. The second return is
// false if the heap is empty.
func (h *Heap[T]) MinMut() (*PeekMut[T], bool) {
	if len(h.data) == 0 {
		return nil, false
	}
	return &PeekMut[T]{h: h}, true
}

// MaxMut returns a handle on the greatest item. The second return is
// false if the heap is empty.
func (h *Heap[T]) MaxMut() (*PeekMut[T], bool) {
	if len(h.data) == 0 {
		return nil, false
	}
	return &PeekMut[T]{h: h, max: true}, true
}

// Value returns a pointer to the live slot the handle was opened on.
// The pointer is invalidated by Close and by any other heap operation.
func (p *PeekMut[T]) Value() *T {
	if p.spent {
		panic("intervalheap: Value on spent PeekMut")
	}
	if p.max && len(p.h.data) > 1 {
		return &p.h.data[1]
	}
	return &p.h.data[0]
}

// Pop removes and returns the item the handle was opened on. The handle
// is spent afterwards: Close no longer repairs (the pop already did) and
// a second Pop panics.
func (p *PeekMut[T]) Pop() T {
	if p.spent {
		panic("intervalheap: Pop on spent PeekMut")
	}
	p.spent = true
	var out T
	if p.max {
		out, _ = p.h.PopMax()
	} else {
		out, _ = p.h.PopMin()
	}
	return out
}

// Close releases the handle, repairing the heap if the caller's mutation
// broke the invariants. Close is idempotent; only the first call
// repairs.
func (p *PeekMut[T]) Close() {
	if p.spent {
		return
	}
	p.spent = true
	h := p.h
	if len(h.data) > 1 && h.compare(h.data[0], h.data[1]) > 0 {
		h.data[0], h.data[1] = h.data[1], h.data[0]
	}
	if p.max {
		SiftDownMax(h.data, h.compare)
		fixUnpairedTail(h.data, h.compare)
	} else {
		SiftDownMin(h.data, h.compare)
	}
	h.check()
}

// fixUnpairedTail repairs the one containment violation SiftDownMax
// cannot see. An unpaired last node stores its only value at an even
// offset, so it is never a candidate in the high-slot descent; if the
// max was lowered through a handle, that value can end up greater than
// its parent's high. One swap settles it: the raised value was below the
// pre-mutation maximum, so it nests inside the grandparent interval, and
// the lowered value still dominates the low it pairs with. Removal paths
// never need this because the value swapped into the root high slot is
// the structurally last item, which the unpaired node's value cannot
// exceed.
func fixUnpairedTail[T any](v []T, compare func(a, b T) int) {
	last := len(v) - 1
	if last < 2 || last&1 == 1 {
		return
	}
	p := ParentLow(last)
	if compare(v[last], v[p+1]) > 0 {
		v[last], v[p+1] = v[p+1], v[last]
	}
}
