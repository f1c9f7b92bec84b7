package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	strs := [][]byte{
		[]byte("apple"),  // 5 -> odd, a reject example
		[]byte("fig"),    // 3
		[]byte("kiwi"),   // 4
		[]byte("banana"), // 6
		[]byte("pear"),   // 4
		[]byte("plum"),   // 4
	}
	src := FromStrings(strs)
	seq := New(src, IdentityOrder(src.Count()))

	isEvenLength := func(logicalIndex int) bool {
		return len(strs[logicalIndex])%2 == 0
	}
	k := Partition(seq, isEvenLength)

	for i := 0; i < k; i++ {
		require.True(t, isEvenLength(int(seq.Order[i])), "slot %d should satisfy predicate", i)
	}
	for i := k; i < seq.Count(); i++ {
		require.False(t, isEvenLength(int(seq.Order[i])), "slot %d should not satisfy predicate", i)
	}

	seen := make(map[uint64]bool)
	for _, v := range seq.Order {
		seen[v] = true
	}
	require.Len(t, seen, len(strs), "partition must be a permutation, not a filter")
}

func TestPartitionAllTrueOrFalse(t *testing.T) {
	strs := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	src := FromStrings(strs)

	seq := New(src, IdentityOrder(src.Count()))
	k := Partition(seq, func(int) bool { return true })
	require.Equal(t, 3, k)

	seq2 := New(src, IdentityOrder(src.Count()))
	k2 := Partition(seq2, func(int) bool { return false })
	require.Equal(t, 0, k2)
}
