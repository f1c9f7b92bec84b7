package stringzilla

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func levenshteinRef(a, b []byte) int {
	la, lb := len(a), len(b)
	rows := make([][]int, la+1)
	for i := range rows {
		rows[i] = make([]int, lb+1)
		rows[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		rows[0][j] = j
	}
	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := rows[i-1][j] + 1
			ins := rows[i][j-1] + 1
			sub := rows[i-1][j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			rows[i][j] = m
		}
	}
	return rows[la][lb]
}

func TestLevenshteinMatchesReference(t *testing.T) {
	cases := []struct{ a, b string }{
		{"", ""},
		{"", "abc"},
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"abc", "abc"},
		{"abcdefgh", "abcdxfgh"},
		{"intention", "execution"},
	}
	const bound = 1000
	for _, c := range cases {
		want := levenshteinRef([]byte(c.a), []byte(c.b))
		if want > bound {
			want = bound
		}
		buf := make([]byte, LevenshteinMemoryNeeded(len(c.a), len(c.b)))
		got := Levenshtein([]byte(c.a), []byte(c.b), buf, bound)
		require.Equal(t, want, got, "Levenshtein(%q, %q)", c.a, c.b)
	}
}

func TestLevenshteinBoundEarlyExit(t *testing.T) {
	a := []byte("aaaaaaaaaaaaaaaaaaaa")
	b := []byte("bbbbbbbbbbbbbbbbbbbb")
	buf := make([]byte, LevenshteinMemoryNeeded(len(a), len(b)))
	require.Equal(t, 3, Levenshtein(a, b, buf, 3))
}

func TestLevenshteinEmptyInputs(t *testing.T) {
	buf := make([]byte, LevenshteinMemoryNeeded(5, 5))
	require.Equal(t, 5, Levenshtein(nil, []byte("abcde"), buf, 100))
	require.Equal(t, 5, Levenshtein([]byte("abcde"), nil, buf, 100))
	require.Equal(t, 0, Levenshtein(nil, nil, buf, 100))
}

func TestLevenshteinWordCellPath(t *testing.T) {
	a := make([]byte, 300)
	b := make([]byte, 300)
	for i := range a {
		a[i] = byte('a' + i%5)
		b[i] = byte('a' + i%5)
	}
	b[299] = 'z'
	buf := make([]byte, LevenshteinMemoryNeeded(len(a), len(b)))
	require.Equal(t, 1, Levenshtein(a, b, buf, 1000))
}
