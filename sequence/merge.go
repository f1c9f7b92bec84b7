package sequence

// Merge combines two adjacent sorted runs of seq's indirection vector,
// order[0:mid) and order[mid:count), into one sorted run in place, under
// the comparator less(seq, i, j) (slot indices into order).
//
// It uses the classic block-rotation in-place merge (advance through the
// left run; when the right run's head belongs earlier, rotate it into
// place) rather than a merge into a scratch buffer, since the indirection
// vector is this package's only mutable state and it allocates nothing.
// That trades merge's usual O(n) time for O(n^2) worst case; callers
// merging very large runs where that matters should pre-sort with Sort
// instead, which applies radix buckets first.
func Merge(seq *Sequence, mid int, less func(seq *Sequence, i, j int) bool) {
	order := seq.Order
	n := len(order)
	i, j := 0, mid
	for i < j && j < n {
		if !less(seq, j, i) {
			i++
			continue
		}
		rotateRightByOne(order[i : j+1])
		i++
		j++
	}
}

// rotateRightByOne moves the last element of s to the front, shifting the
// rest up by one: [a,b,c,d] -> [d,a,b,c].
func rotateRightByOne(s []uint64) {
	last := s[len(s)-1]
	copy(s[1:], s[:len(s)-1])
	s[0] = last
}
