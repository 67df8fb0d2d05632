package intervalheap

/*

# Interval heap primitives and a double-ended priority queue

This package provides a double-ended priority queue backed by an interval
heap: a single flat array that supports O(1) access to both the smallest
and the greatest element, O(log n) insertion, and O(log n) removal from
either end. If only one end is needed, a conventional binary heap is the
better choice.

It follows the same "functional primitives" style as `go-merklelog/mmr`:

- small, composable functions
- index arithmetic on a flat slice, no materialized tree
- a burden of knowledge on the caller for the low level api
- an opinionated container type (`Heap`) layered on top

## Structure

An interval heap is a binary tree in which each node holds two values
forming a closed interval:

 1. Within a node, the first value is less than or equal to the second
    (the node's interval is [low, high]). The last node may hold only a
    low value.
 2. A child node's interval is completely contained in its parent's
    interval.

It follows that the root node holds the global minimum in its low slot
and the global maximum in its high slot.

The tree is stored in a flat slice. Even indices are the "low" slot of a
node, odd indices the "high" slot. For a heap of 13 items (7 nodes) the
numbers below are the slice offsets:

	         (0 1)
	        /     \
	   (2 3)       (4 5)
	   /   \       /    \
	 (6 7)(8 9)(10 11)(12 --)

Node k occupies offsets {2k, 2k+1}; its parent is node (k-1)/2. All
navigation is exact integer arithmetic on offsets, see `nodes.go`.

## Low level api

`SiftUp`, `SiftDownMin` and `SiftDownMax` operate directly on a slice and
a three-way comparator. They assume their documented preconditions and do
not validate them; feeding them a slice that is not in the required state
yields nonsense without any error being detected. `Valid` performs the
full structural check and exists for conformance testing, not hot paths.

The min and max sift-down routines are deliberately kept as two separate
functions even though they look symmetric. The max side can always fix
the node pair it just vacated because the low partner of a high slot
always exists; the min side must first check whether the high partner
exists, since the last node of an odd-length heap has none. Folding the
two into one parameterized routine hides that asymmetry.

## Ordering

The ordering rule is an injected three-way comparator with the
`cmp.Compare` contract (negative when a sorts before b, zero when equal,
positive otherwise), the same shape `slices.SortFunc` takes. Natural
order constructors are provided for `cmp.Ordered` element types.

It is a logic error for an element to be mutated in a way that changes
its ordering relative to other elements while it sits in the heap. The
only sanctioned in-place mutation path is the `PeekMut` handle returned
by `MinMut`/`MaxMut`, which restores the structure when closed.

## Concurrency

None. The heap has no internal synchronization and every operation runs
to completion on the calling goroutine. Callers that share a Heap across
goroutines must provide their own locking.

## Conformance builds

Building with `-tags heapcheck` asserts full structural validity after
every mutating operation and panics on violation. The default build does
no checking; a violation there indicates a bug in this package, not a
runtime condition a caller can recover from.

*/
