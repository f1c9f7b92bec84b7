package sequence

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	strs := [][]byte{
		[]byte("banana"), // 0
		[]byte("date"),   // 1
		[]byte("fig"),    // 2
		[]byte("apple"),  // 3
		[]byte("cherry"), // 4
		[]byte("egg"),    // 5
	}
	src := FromStrings(strs)
	// Two pre-sorted runs by logical index: [banana,date,fig] and
	// [apple,cherry,egg], each already ascending lexicographically.
	order := []uint64{0, 1, 2, 3, 4, 5}
	seq := New(src, order)

	less := func(seq *Sequence, i, j int) bool {
		a := strs[seq.Order[i]]
		b := strs[seq.Order[j]]
		return string(a) < string(b)
	}

	Merge(seq, 3, less)

	var got []string
	for _, li := range seq.Order {
		got = append(got, string(strs[li]))
	}
	want := append([]string(nil), "banana", "date", "fig", "apple", "cherry", "egg")
	sort.Strings(want)
	require.Equal(t, want, got)
}

func TestRotateRightByOne(t *testing.T) {
	s := []uint64{1, 2, 3, 4}
	rotateRightByOne(s)
	require.Equal(t, []uint64{4, 1, 2, 3}, s)
}
