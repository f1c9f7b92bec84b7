package sequence

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortPartialOrdersFirstK(t *testing.T) {
	words := []string{"banana", "apple", "cherry", "date", "fig", "elderberry", "app"}
	strs := make([][]byte, len(words))
	for i, w := range words {
		strs[i] = []byte(w)
	}
	src := FromStrings(strs)
	seq := New(src, IdentityOrder(src.Count()))

	k := 3
	SortPartial(seq, k)

	var gotPrefix []string
	for i := 0; i < k; i++ {
		gotPrefix = append(gotPrefix, words[seq.Order[i]])
	}
	wantAll := append([]string(nil), words...)
	sort.Strings(wantAll)
	require.Equal(t, wantAll[:k], gotPrefix)

	seen := make(map[uint64]bool, len(words))
	for _, v := range seq.Order {
		seen[v] = true
	}
	require.Len(t, seen, len(words), "SortPartial must still be a permutation")
}

func TestSortPartialKClampedToCount(t *testing.T) {
	strs := [][]byte{[]byte("c"), []byte("a"), []byte("b")}
	src := FromStrings(strs)
	seq := New(src, IdentityOrder(src.Count()))

	SortPartial(seq, 100)

	var got []string
	for _, li := range seq.Order {
		got = append(got, string(strs[li]))
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSortPartialZeroOrNegativeIsNoop(t *testing.T) {
	strs := [][]byte{[]byte("c"), []byte("a"), []byte("b")}
	src := FromStrings(strs)
	seq := New(src, IdentityOrder(src.Count()))
	original := append([]uint64(nil), seq.Order...)

	SortPartial(seq, 0)
	require.Equal(t, original, seq.Order)

	SortPartial(seq, -5)
	require.Equal(t, original, seq.Order)
}

func TestSortPartialRandomAgainstFullSort(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	n := 500
	strs := make([][]byte, n)
	for i := range strs {
		buf := make([]byte, 1+r.Intn(10))
		for j := range buf {
			buf[j] = byte('a' + r.Intn(26))
		}
		strs[i] = buf
	}
	k := 50

	src := FromStrings(strs)
	seq := New(src, IdentityOrder(n))
	SortPartial(seq, k)

	full := make([]string, n)
	for i, s := range strs {
		full[i] = string(s)
	}
	sort.Strings(full)

	for i := 0; i < k; i++ {
		require.Equal(t, full[i], string(strs[seq.Order[i]]), "slot %d", i)
	}
}
