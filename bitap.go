package stringzilla

// bitapWord is the state-word width used by a Bitap specialization. The
// three exported entry points below bind T to uint8, uint16, and uint64,
// giving three parallel specializations backed by 8-, 16-, and 64-bit
// state words.
type bitapWord interface {
	~uint8 | ~uint16 | ~uint64
}

// bitapFind implements Shift-Or (Bitap) exact matching: pattern_mask[c] has
// every bit set except those corresponding to positions where needle[i] ==
// c; running_match starts all-ones and is shifted left each step, ORing in
// pattern_mask[haystack[i]]. A match is signaled when bit m-1 of
// running_match clears.
func bitapFind[T bitapWord](haystack, needle []byte) int {
	m := len(needle)
	var allOnes T
	allOnes = ^allOnes

	var patternMask [256]T
	for i := range patternMask {
		patternMask[i] = allOnes
	}
	for i := 0; i < m; i++ {
		patternMask[needle[i]] &^= T(1) << uint(i)
	}

	matchBit := T(1) << uint(m-1)
	running := allOnes
	for i, b := range haystack {
		running = (running << 1) | patternMask[b]
		if running&matchBit == 0 {
			return i - m + 1
		}
	}
	return -1
}

// FindUnderK8 runs Bitap with an 8-bit state word; needle must be 1-8 bytes.
func FindUnderK8(haystack, needle []byte) int { return bitapFind[uint8](haystack, needle) }

// FindUnderK16 runs Bitap with a 16-bit state word; needle must be 1-16 bytes.
func FindUnderK16(haystack, needle []byte) int { return bitapFind[uint16](haystack, needle) }

// FindUnderK64 runs Bitap with a 64-bit state word; needle must be 1-64 bytes.
func FindUnderK64(haystack, needle []byte) int { return bitapFind[uint64](haystack, needle) }

// findBitapDispatch implements the tail of Find's dispatch table: Bitap-8/
// 16/64 for needles up to 64 bytes, and a 64-byte Bitap prefix search with
// byte-wise suffix verification beyond that.
func findBitapDispatch(haystack, needle []byte) int {
	switch m := len(needle); {
	case m <= 8:
		return FindUnderK8(haystack, needle)
	case m <= 16:
		return FindUnderK16(haystack, needle)
	case m <= 64:
		return FindUnderK64(haystack, needle)
	default:
		return findLongNeedle(haystack, needle)
	}
}

// findLongNeedle handles needles longer than 64 bytes: Bitap-64 locates
// candidate positions matching needle's first 64 bytes, and each candidate's
// suffix is verified byte-wise. A suffix mismatch resumes the prefix search
// immediately after the failed candidate's start, rather than skipping past
// the whole 64-byte prefix window, so overlapping candidates aren't missed.
func findLongNeedle(haystack, needle []byte) int {
	prefix := needle[:64]
	suffix := needle[64:]

	base := 0
	for {
		search := haystack[base:]
		rel := FindUnderK64(search, prefix)
		if rel < 0 {
			return -1
		}
		pos := base + rel
		end := pos + len(needle)
		if end > len(haystack) {
			return -1
		}
		if equalScalar(haystack[pos+64:end], suffix) {
			return pos
		}
		base = pos + 1
	}
}
