package intervalheap

// SiftUp restores the interval heap invariants after an append. The
// first len(v)-1 items must already form a valid interval heap; the last
// item is the one being inserted. Runs in O(log n) comparisons.
//
// The walk starts at the last node and climbs toward the root. At each
// level at most one of the two bounds can be out of place: once the new
// node's low has been swapped below the parent's low (or its high above
// the parent's high), the other bound is already inside the parent's
// interval and the remaining ascent only follows the swapped side.
func SiftUp[T any](v []T, compare func(a, b T) int) {
	// nodeMin and nodeMax are tracked separately rather than as a single
	// node offset so that the unpaired last node of an odd-length heap
	// (where both refer to the same offset) needs no special casing.
	nodeMax := len(v) - 1
	nodeMin := LowIndex(nodeMax)
	if compare(v[nodeMin], v[nodeMax]) > 0 {
		v[nodeMin], v[nodeMax] = v[nodeMax], v[nodeMin]
	}
	for !IsRoot(nodeMin) {
		parMin := ParentLow(nodeMin)
		parMax := parMin + 1
		if compare(v[nodeMin], v[parMin]) < 0 {
			v[parMin], v[nodeMin] = v[nodeMin], v[parMin]
		} else if compare(v[parMax], v[nodeMax]) < 0 {
			v[parMax], v[nodeMax] = v[nodeMax], v[parMax]
		} else {
			return
		}
		nodeMin = parMin
		nodeMax = parMax
	}
}
