package sequence

// Partition reorders seq's indirection vector in place so that every slot i
// with i < k satisfies pred(order[i]) == true, where order[i] is the
// logical index stored at slot i. It returns the boundary k. This is an
// unstable Hoare-style partition: equal-predicate elements may be reordered
// relative to each other.
func Partition(seq *Sequence, pred func(logicalIndex int) bool) int {
	order := seq.Order
	lo, hi := 0, len(order)
	for lo < hi {
		if pred(int(order[lo])) {
			lo++
			continue
		}
		hi--
		order[lo], order[hi] = order[hi], order[lo]
	}
	return lo
}
