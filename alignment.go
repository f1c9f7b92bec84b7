package stringzilla

// SubstitutionMatrix is a flat 256x256 table of signed small-integer
// substitution costs, indexed as matrix[int(a)*256+int(b)] for the cost of
// aligning byte a against byte b. Build one with NewSubstitutionMatrix or
// populate a zero-value matrix directly.
type SubstitutionMatrix [256 * 256]int8

// NewSubstitutionMatrix builds a SubstitutionMatrix where a match costs
// matchCost and any mismatch costs mismatchCost; matchCost=0,
// mismatchCost=1 recovers plain edit distance, useful for cross-checking
// against Levenshtein.
func NewSubstitutionMatrix(matchCost, mismatchCost int8) *SubstitutionMatrix {
	var m SubstitutionMatrix
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if a == b {
				m[a*256+b] = matchCost
			} else {
				m[a*256+b] = mismatchCost
			}
		}
	}
	return &m
}

// AlignmentScoreMemoryNeeded returns the minimum scratch buffer size, in
// bytes, that AlignmentScore requires for strings of length la and lb: two
// (lb+1)-cell rows of signed 8-byte cells.
func AlignmentScoreMemoryNeeded(la, lb int) int {
	return 2 * (lb + 1) * 8
}

// AlignmentScore computes a Needleman-Wunsch global alignment score between
// a and b under substitution costs subs and a single linear gap penalty gap.
// Unlike Levenshtein there is no bound: costs may be negative, so the DP
// does not terminate early. buf must be at least
// AlignmentScoreMemoryNeeded(len(a), len(b)) bytes.
func AlignmentScore(a, b []byte, gap int64, subs *SubstitutionMatrix, buf []byte) int64 {
	la, lb := len(a), len(b)
	rowLen := lb + 1
	prev := newWordRow(buf[:8*rowLen])
	cur := newWordRow(buf[8*rowLen : 16*rowLen])

	for j := 0; j <= lb; j++ {
		prev.setSigned(j, int64(j)*gap)
	}

	for i := 0; i < la; i++ {
		cur.setSigned(0, int64(i+1)*gap)
		for j := 0; j < lb; j++ {
			subCost := int64(subs[int(a[i])*256+int(b[j])])
			del := prev.getSigned(j+1) + gap
			ins := cur.getSigned(j) + gap
			sub := prev.getSigned(j) + subCost
			cur.setSigned(j+1, minInt64_3(del, ins, sub))
		}
		prev, cur = cur, prev
	}
	return prev.getSigned(lb)
}

func minInt64_3(a, b, c int64) int64 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
