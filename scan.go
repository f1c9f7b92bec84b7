package stringzilla

import "github.com/michaelgrigoryan25/stringzilla/internal/swar"

// FindByte returns the index of the first byte in haystack equal to needle,
// or -1 if no such byte exists. It reads 8-byte words with unaligned SWAR
// loads starting at offset 0, broadcasting needle across all eight lanes and
// testing all eight bytes per iteration for an all-ones equality lane
// before falling back to a byte-at-a-time tail scan.
func FindByte(haystack []byte, needle byte) int {
	n := len(haystack)
	broadcast := swar.Broadcast8(needle)

	i := 0
	for ; i+8 <= n; i += 8 {
		w := swar.Load64(haystack, i)
		if mask := swar.EqMask(w, broadcast); mask != 0 {
			return i + swar.CountTrailingZeros64(mask)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// RFindByte returns the index of the last byte in haystack equal to needle,
// or -1 if none match. Symmetric to FindByte: scans 8-byte words from the
// end, deriving the matching lane from CountLeadingZeros64 of the equality
// mask instead of trailing zeros.
func RFindByte(haystack []byte, needle byte) int {
	n := len(haystack)
	broadcast := swar.Broadcast8(needle)

	off := n - 8
	for ; off >= 0; off -= 8 {
		w := swar.Load64(haystack, off)
		if mask := swar.EqMask(w, broadcast); mask != 0 {
			lane := 7 - swar.CountLeadingZeros64(mask)/8
			return off + lane
		}
	}
	// Bytes [0, off+8) precede the last word scanned and are still unchecked.
	for i := off + 7; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// eqMaskShifted returns EqMask(w, broadcast) shifted right by byteShift
// bytes, i.e. lane L of the result holds lane L+byteShift of the original
// mask. Used to align per-needle-byte equality lanes onto a common
// candidate-start lane, the SWAR technique behind Find2Byte/Find3Byte/
// Find4Byte.
func eqMaskShifted(w uint64, needleByte byte, byteShift int) uint64 {
	mask := swar.EqMask(w, swar.Broadcast8(needleByte))
	return mask >> uint(byteShift*8)
}

// findShortNeedle implements the hyper-scalar SWAR search shared by
// Find2Byte/Find3Byte/Find4Byte: for an 8-byte load, AND together the
// per-needle-byte equality masks shifted into alignment so that a non-zero
// lane L means needle matches haystack starting at local offset L. validLanes
// bounds how many leading lanes of the word can start a full needle match
// (len(needle) bytes must fit before the window ends) and doubles as the
// cursor advance per iteration, overlapping by one window's worth of bytes
// with the next read so that no candidate start position is skipped.
func findShortNeedle(haystack, needle []byte) int {
	m := len(needle)
	n := len(haystack)
	validLanes := 8 - m + 1

	i := 0
	for ; i+8 <= n; i += validLanes {
		w := swar.Load64(haystack, i)
		// A right shift by k*8 carries in zero bits at the top, so any lane
		// L with L+k > 7 is already zero in eqMaskShifted(w, needle[k], k);
		// the AND below is therefore naturally confined to the validLanes
		// candidate starts without any extra masking.
		candidate := eqMaskShifted(w, needle[0], 0)
		for k := 1; k < m; k++ {
			candidate &= eqMaskShifted(w, needle[k], k)
		}
		if candidate != 0 {
			return i + swar.CountTrailingZeros64(candidate)/8
		}
	}
	// Tail: scalar verify for the remainder, which may be shorter than the
	// needle itself.
	for ; i+m <= n; i++ {
		if equalScalar(haystack[i:i+m], needle) {
			return i
		}
	}
	return -1
}

func equalScalar(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Find2Byte searches for a 2-byte needle using hyper-scalar SWAR: each
// 8-byte load yields up to 7 candidate start positions per iteration.
func Find2Byte(haystack []byte, needle []byte) int { return findShortNeedle(haystack, needle[:2]) }

// Find3Byte searches for a 3-byte needle; up to 6 candidate positions per
// 8-byte load.
func Find3Byte(haystack []byte, needle []byte) int { return findShortNeedle(haystack, needle[:3]) }

// Find4Byte searches for a 4-byte needle; up to 5 candidate positions per
// 8-byte load (see DESIGN.md for how this compares to a simpler 4-lane
// offset-table variant).
func Find4Byte(haystack []byte, needle []byte) int { return findShortNeedle(haystack, needle[:4]) }

// Find dispatches to the size-appropriate search strategy: direct SWAR for
// needles of length 0-4, Bitap (8/16/64-bit state words) for 5-64, and a
// 64-byte Bitap prefix plus byte-wise suffix verification beyond that.
func Find(haystack, needle []byte) int {
	switch len(needle) {
	case 0:
		return -1
	case 1:
		return FindByte(haystack, needle[0])
	case 2:
		return Find2Byte(haystack, needle)
	case 3:
		return Find3Byte(haystack, needle)
	case 4:
		return Find4Byte(haystack, needle)
	}
	return findBitapDispatch(haystack, needle)
}
