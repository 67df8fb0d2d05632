package intervalheap

// SiftDownMax restores the interval heap invariants after the root's
// high slot (offset 1) has been overwritten without violating the root's
// own pair order. All other nodes must still be valid. Runs in O(log n)
// comparisons.
//
// Unlike SiftDownMin, the local pair fix targets the low partner of the
// slot just filled, which always exists: a high slot is an odd offset,
// so its low partner at offset-1 is present even in the unpaired last
// node case.
func SiftDownMax[T any](v []T, compare func(a, b T) int) {
	high := 1
	for {
		c1 := high*2 + 1 // high offset of the first child node
		c2 := high*2 + 3 // high offset of the second child node
		if len(v) <= c1 {
			return
		}
		// Descend into the child with the greater high.
		ch := c1
		if c2 < len(v) && compare(v[c1], v[c2]) <= 0 {
			ch = c2
		}
		if compare(v[ch], v[high]) <= 0 {
			return
		}
		v[ch], v[high] = v[high], v[ch]
		high = ch
		low := high - 1
		if compare(v[low], v[high]) > 0 {
			v[low], v[high] = v[high], v[low]
		}
	}
}
