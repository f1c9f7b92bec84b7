package sequence

import "github.com/michaelgrigoryan25/stringzilla"

// SortPartial arranges seq's indirection vector so that slots [0, k) hold
// the k lexicographically smallest logical strings in ascending order;
// slots [k, count) hold the rest in unspecified order. It costs O(count)
// for selection plus O(k log k) to finish the prefix, cheaper than a full
// Sort when k is much smaller than count. k is clamped to [0, count].
func SortPartial(seq *Sequence, k int) {
	order := seq.Order
	total := len(order)
	if k <= 0 || total < 2 {
		return
	}
	if k > total {
		k = total
	}
	src := seq.Src
	less := func(i, j int) bool {
		a := src.GetStart(int(order[i]))[:src.GetLength(int(order[i]))]
		b := src.GetStart(int(order[j]))[:src.GetLength(int(order[j]))]
		return stringzilla.Order(a, b) == stringzilla.Less
	}
	quickselect(order, 0, total, k-1, less)
	introSort(order[:k], less)
}

// quickselect partitions order[lo:hiExclusive) around the element that
// belongs at absolute index k once sorted, using the same median-of-three
// Lomuto partition introSort uses, so that order[lo:k+1) are exactly the
// k-lo+1 smallest elements of the range (unordered) and order[k+1:hiExclusive)
// are all >= them.
func quickselect(order []uint64, lo, hiExclusive, k int, less func(i, j int) bool) {
	for hiExclusive-lo > 1 {
		p := partitionMedianOfThree(order, lo, hiExclusive, less)
		switch {
		case k < p:
			hiExclusive = p
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}
