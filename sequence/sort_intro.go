package sequence

import "github.com/michaelgrigoryan25/stringzilla/internal/swar"

// introInsertionThreshold is the sub-range size below which introSort
// switches to a plain insertion sort, avoiding quicksort/heapsort overhead
// on nearly-sorted tail ranges.
const introInsertionThreshold = 16

// SortIntro sorts seq's indirection vector using an arbitrary comparator,
// switching from quicksort to heapsort once recursion exceeds
// 2*floor(log2(count)) levels, guaranteeing O(n log n) worst case. less
// compares two slots of seq.Order.
func SortIntro(seq *Sequence, less func(seq *Sequence, i, j int) bool) {
	introSort(seq.Order, func(i, j int) bool { return less(seq, i, j) })
}

// introSort is the reusable core: Sort's radix-bucket comparison phase
// calls this directly on each bucket sub-slice with a suffix-offset
// comparator, rather than going through the Sequence-shaped SortIntro.
func introSort(order []uint64, less func(i, j int) bool) {
	n := len(order)
	if n < 2 {
		return
	}
	maxDepth := 2 * swar.Ilog2(uint64(n))
	introSortLoop(order, 0, n, maxDepth, less)
}

func introSortLoop(order []uint64, lo, hi, depth int, less func(i, j int) bool) {
	for hi-lo > introInsertionThreshold {
		if depth == 0 {
			heapSort(order, lo, hi, less)
			return
		}
		depth--
		p := partitionMedianOfThree(order, lo, hi, less)
		// Recurse into the smaller side, loop into the larger, bounding
		// stack depth to O(log n).
		if p-lo < hi-p {
			introSortLoop(order, lo, p, depth, less)
			lo = p + 1
		} else {
			introSortLoop(order, p+1, hi, depth, less)
			hi = p
		}
	}
	insertionSort(order, lo, hi, less)
}

// partitionMedianOfThree picks the median of order[lo], order[mid],
// order[hi-1] as pivot, moves it to hi-1, then runs a Lomuto partition over
// [lo, hi-1) against it, returning the pivot's final index.
func partitionMedianOfThree(order []uint64, lo, hi int, less func(i, j int) bool) int {
	mid := lo + (hi-lo)/2
	last := hi - 1

	if less(mid, lo) {
		order[lo], order[mid] = order[mid], order[lo]
	}
	if less(last, lo) {
		order[lo], order[last] = order[last], order[lo]
	}
	if less(last, mid) {
		order[mid], order[last] = order[last], order[mid]
	}
	order[mid], order[last] = order[last], order[mid]

	store := lo
	for k := lo; k < last; k++ {
		if less(k, last) {
			order[k], order[store] = order[store], order[k]
			store++
		}
	}
	order[store], order[last] = order[last], order[store]
	return store
}

func insertionSort(order []uint64, lo, hi int, less func(i, j int) bool) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && less(j, j-1); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
}

// heapSort sorts order[lo:hi) in place using a binary max-heap, the
// guaranteed-O(n log n) fallback introSort switches to once its recursion
// budget is exhausted.
func heapSort(order []uint64, lo, hi int, less func(i, j int) bool) {
	n := hi - lo
	for start := n/2 - 1; start >= 0; start-- {
		siftDown(order, lo, n, start, less)
	}
	for end := n - 1; end > 0; end-- {
		order[lo], order[lo+end] = order[lo+end], order[lo]
		siftDown(order, lo, end, 0, less)
	}
}

func siftDown(order []uint64, lo, n, start int, less func(i, j int) bool) {
	root := start
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && less(lo+child, lo+child+1) {
			child++
		}
		if !less(lo+root, lo+child) {
			return
		}
		order[lo+root], order[lo+child] = order[lo+child], order[lo+root]
		root = child
	}
}
