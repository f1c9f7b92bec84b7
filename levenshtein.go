package stringzilla

import "github.com/michaelgrigoryan25/stringzilla/internal/swar"

// levenshteinCellSize returns the per-cell width (in bytes) the DP rows use
// for strings of length la and lb: a single byte when both are shorter than
// 256, otherwise a machine word (8 bytes) to accommodate distances that no
// longer fit in a byte.
func levenshteinCellSize(la, lb int) int {
	if la < 256 && lb < 256 {
		return 1
	}
	return 8
}

// LevenshteinMemoryNeeded returns the minimum scratch buffer size, in bytes,
// that Levenshtein requires for strings of length la and lb: two
// (lb+1)-cell rows, sized per levenshteinCellSize.
func LevenshteinMemoryNeeded(la, lb int) int {
	return 2 * (lb + 1) * levenshteinCellSize(la, lb)
}

// Levenshtein computes the bounded edit distance between a and b using a
// two-row dynamic-programming sweep over b's dimension, returning early once
// a row's minimum reaches bound. buf must be at least
// LevenshteinMemoryNeeded(len(a), len(b)) bytes; callers own buf's storage,
// nothing here allocates.
func Levenshtein(a, b []byte, buf []byte, bound int) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return swar.Min2(lb, bound)
	}
	if lb == 0 {
		return swar.Min2(la, bound)
	}
	if absInt(la-lb) > bound {
		return bound
	}

	if levenshteinCellSize(la, lb) == 1 {
		return levenshteinByteCells(a, b, buf, bound)
	}
	return levenshteinWordCells(a, b, buf, bound)
}

func levenshteinByteCells(a, b []byte, buf []byte, bound int) int {
	la, lb := len(a), len(b)
	rowLen := lb + 1
	prev := buf[:rowLen:rowLen]
	cur := buf[rowLen : 2*rowLen : 2*rowLen]

	for j := 0; j <= lb; j++ {
		prev[j] = byte(swar.Min2(j, 255))
	}

	for i := 0; i < la; i++ {
		cur[0] = byte(swar.Min2(i+1, 255))
		rowMin := int(cur[0])
		for j := 0; j < lb; j++ {
			cost := 0
			if a[i] != b[j] {
				cost = 1
			}
			// A cell never exceeds max(la, lb) <= 255, but the +1 steps are
			// taken in int so that a 255-valued neighbour cannot wrap to 0.
			v := swar.Min3(int(prev[j+1])+1, int(cur[j])+1, int(prev[j])+cost)
			cur[j+1] = byte(v)
			if v < rowMin {
				rowMin = v
			}
		}
		if rowMin >= bound {
			return bound
		}
		prev, cur = cur, prev
	}
	return swar.Min2(int(prev[lb]), bound)
}

func levenshteinWordCells(a, b []byte, buf []byte, bound int) int {
	la, lb := len(a), len(b)
	rowLen := lb + 1
	prev := newWordRow(buf[:8*rowLen])
	cur := newWordRow(buf[8*rowLen : 16*rowLen])

	for j := 0; j <= lb; j++ {
		prev.set(j, uint64(j))
	}

	for i := 0; i < la; i++ {
		cur.set(0, uint64(i+1))
		rowMin := i + 1
		for j := 0; j < lb; j++ {
			var cost uint64
			if a[i] != b[j] {
				cost = 1
			}
			del := prev.get(j+1) + 1
			ins := cur.get(j) + 1
			sub := prev.get(j) + cost
			v := minU64_3(del, ins, sub)
			cur.set(j+1, v)
			if int(v) < rowMin {
				rowMin = int(v)
			}
		}
		if rowMin >= bound {
			return bound
		}
		prev, cur = cur, prev
	}
	return swar.Min2(int(prev.get(lb)), bound)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minByte3(a, b, c byte) byte {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func minU64_3(a, b, c uint64) uint64 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
