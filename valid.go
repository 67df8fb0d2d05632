package intervalheap

// Valid reports whether v is a structurally valid interval heap under
// compare. It walks every node and is O(n); it exists for conformance
// testing and the heapcheck build, not for hot paths.
//
// v is valid if:
//
//  1. It has fewer than two items, OR
//  2. Every node's low is less than or equal to its high (an unpaired
//     last node is its own high), AND
//  3. Every non-root node's low is greater than or equal to its parent's
//     low, AND
//  4. Every non-root node's high is less than or equal to its parent's
//     high.
func Valid[T any](v []T, compare func(a, b T) int) bool {
	if len(v) < 2 {
		return true
	}
	if compare(v[0], v[1]) > 0 {
		return false
	}
	for low := 2; low < len(v); low += 2 {
		high := low + 1
		if high == len(v) {
			high = low
		}
		p := ParentLow(low)
		if compare(v[low], v[high]) > 0 {
			return false
		}
		if compare(v[low], v[p]) < 0 {
			return false
		}
		if compare(v[high], v[p+1]) > 0 {
			return false
		}
	}
	return true
}
