package intervalheap

// Navigation primitives for the implicit tree. Node k of the heap
// occupies slice offsets {2k, 2k+1}, so either offset of a node maps to
// the node's low offset by clearing the least significant bit, and the
// parent of node k is node (k-1)/2.
//
// Using the 13 item (7 node) layout from doc.go, where the numbers are
// slice offsets:
//
//	         (0 1)
//	        /     \
//	   (2 3)       (4 5)
//	   /   \       /    \
//	 (6 7)(8 9)(10 11)(12 --)
//
// LowIndex(9) is 8, ParentLow(8) is 2, ParentLow(2) is 0.

// IsRoot reports whether offset i falls in the root node.
func IsRoot(i int) bool { return i < 2 }

// LowIndex maps either offset of a node to the node's low offset.
func LowIndex(i int) int { return i &^ 1 }

// ParentLow returns the low offset of the parent of the node containing
// offset i. The result is meaningless for root offsets; callers are
// expected to have excluded them with IsRoot first.
func ParentLow(i int) int { return LowIndex((i - 2) / 2) }
