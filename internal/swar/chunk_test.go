package swar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEach8(t *testing.T) {
	data := make([]byte, 20)
	var words []uint64
	tail := Each8(data, func(w uint64) bool {
		words = append(words, w)
		return false
	})
	require.Len(t, words, 2)
	require.Len(t, tail, 4)
}

func TestEach8StopsEarly(t *testing.T) {
	data := make([]byte, 32)
	data[9] = 1 // inside the second 8-byte word
	count := 0
	Each8(data, func(w uint64) bool {
		count++
		return w != 0
	})
	require.Equal(t, 2, count)
}

func TestReverseEach8(t *testing.T) {
	data := make([]byte, 19)
	var offs []int
	leading := ReverseEach8(data, func(off int, w uint64) bool {
		offs = append(offs, off)
		return false
	})
	require.Equal(t, []int{11, 3}, offs)
	require.Len(t, leading, 3)
}
