package sequence

import "github.com/michaelgrigoryan25/stringzilla"

// Sort orders seq's indirection vector into full ascending lexicographic
// order using a hybrid radix-then-comparison engine: a 4-pass LSD radix
// sort buckets logical strings by their first four bytes, then each bucket
// sharing an identical 4-byte prefix is finished with introSort comparing
// the remaining suffix.
//
// The radix phase needs one full-size scratch buffer to ping-pong counting
// passes through; the indirection vector is otherwise this package's only
// mutable state, so this is a deliberate, scoped exception local to Sort,
// not a relaxation of that rule for the package as a whole (Partition,
// Merge, SortIntro and SortPartial all still allocate nothing).
func Sort(seq *Sequence) {
	order := seq.Order
	n := len(order)
	if n < 2 {
		return
	}
	src := seq.Src

	for i, li := range order {
		order[i] = packPrefixKey(src, int(li))
	}

	scratch := make([]uint64, n)
	for pass := 0; pass < 4; pass++ {
		shift := uint(32 + 8*pass)
		var counts [257]int
		for _, key := range order {
			counts[int(byte(key>>shift))+1]++
		}
		for i := 1; i <= 256; i++ {
			counts[i] += counts[i-1]
		}
		for _, key := range order {
			b := byte(key >> shift)
			scratch[counts[b]] = key
			counts[b]++
		}
		order, scratch = scratch, order
	}
	// Four (even) ping-pong swaps land the result back in seq.Order's
	// backing array, so order here aliases seq.Order again.

	for i := 0; i < n; {
		j := i + 1
		prefix := order[i] >> 32
		for j < n && order[j]>>32 == prefix {
			j++
		}
		if j-i > 1 {
			sortBucketBySuffix(src, order[i:j])
		}
		i = j
	}

	for i := range order {
		order[i] &= 0xffffffff
	}
}

// packPrefixKey builds a sort key for the logical string li: its first four
// bytes (zero-padded if shorter) as the high 32 bits, so unsigned integer
// comparison of the key matches lexicographic comparison of the prefix, and
// li itself as the low 32 bits so the permutation survives the radix
// passes. Sequences of more than 2^32 logical strings are out of scope.
func packPrefixKey(src Source, li int) uint64 {
	start := src.GetStart(li)
	n := src.GetLength(li)
	var prefix uint64
	for k := 0; k < 4; k++ {
		var b byte
		if k < n {
			b = start[k]
		}
		prefix = prefix<<8 | uint64(b)
	}
	return prefix<<32 | uint64(uint32(li))
}

// sortBucketBySuffix finishes a run of entries that share an identical
// 4-byte prefix by comparing their bytes starting at offset 4, reusing the
// same introSort core SortIntro exposes.
func sortBucketBySuffix(src Source, bucket []uint64) {
	introSort(bucket, func(i, j int) bool {
		a := suffixOf(src, int(uint32(bucket[i])), 4)
		b := suffixOf(src, int(uint32(bucket[j])), 4)
		return stringzilla.Order(a, b) == stringzilla.Less
	})
}

// suffixOf returns the logical string li's bytes starting at offset skip,
// or an empty slice if the string is no longer than skip.
func suffixOf(src Source, li, skip int) []byte {
	start := src.GetStart(li)
	n := src.GetLength(li)
	if n <= skip {
		return start[:0]
	}
	return start[skip:n:n]
}
