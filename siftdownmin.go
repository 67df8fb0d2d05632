package intervalheap

// SiftDownMin restores the interval heap invariants after the root's low
// slot (offset 0) has been overwritten without violating the root's own
// pair order, typically by swap-removal of the previous minimum. All
// other nodes must still be valid. Runs in O(log n) comparisons.
func SiftDownMin[T any](v []T, compare func(a, b T) int) {
	low := 0
	for {
		c1 := low*2 + 2 // low offset of the first child node
		c2 := low*2 + 4 // low offset of the second child node
		if len(v) <= c1 {
			return // leaf, nothing below to violate containment
		}
		// Descend into the child with the lesser low.
		ch := c1
		if c2 < len(v) && compare(v[c1], v[c2]) >= 0 {
			ch = c2
		}
		if compare(v[ch], v[low]) >= 0 {
			return
		}
		v[ch], v[low] = v[low], v[ch]
		low = ch
		// The value moved down may now exceed its new high partner.
		// The last node of an odd-length heap has no high partner, so
		// the existence check must come first.
		high := low + 1
		if high < len(v) && compare(v[low], v[high]) > 0 {
			v[low], v[high] = v[high], v[low]
		}
	}
}
