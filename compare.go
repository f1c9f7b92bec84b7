package stringzilla

import "github.com/michaelgrigoryan25/stringzilla/internal/swar"

// Ordering is a three-state comparison result, mapped to {-1, 0, +1}.
type Ordering int

const (
	Less       Ordering = -1
	OrderEqual Ordering = 0
	Greater    Ordering = 1
)

// Equal reports whether a and b hold identical bytes. Equal-length inputs
// are compared 8 bytes at a time via unaligned 64-bit loads, falling back to
// progressively narrower loads (32-, 16-, 8-bit) for the sub-8-byte
// remainder instead of a byte-at-a-time loop.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		if swar.Load64(a, i) != swar.Load64(b, i) {
			return false
		}
	}
	return equalTail(a[i:], b[i:])
}

// equalTail compares the sub-8-byte remainder left by Equal's word loop,
// combining 32-, 16-, and 8-bit loads rather than a plain byte loop.
func equalTail(a, b []byte) bool {
	n := len(a)
	i := 0
	if n-i >= 4 {
		if swar.Load32(a, i) != swar.Load32(b, i) {
			return false
		}
		i += 4
	}
	if n-i >= 2 {
		if swar.Load16(a, i) != swar.Load16(b, i) {
			return false
		}
		i += 2
	}
	if n-i >= 1 {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Order performs a three-way lexicographic comparison of a and b. The
// common prefix is compared 8 bytes at a time as big-endian unsigned
// integers (byte-reversing the little-endian unaligned load) so that
// integer comparison agrees with byte-wise lexicographic order; any
// remaining tail falls through to a byte-wise loop. If the common prefix is
// equal, the shorter input sorts first.
func Order(a, b []byte) Ordering {
	shorter := swar.Min2(len(a), len(b))

	i := 0
	for ; i+8 <= shorter; i += 8 {
		wa := swar.LoadBE64(a, i)
		wb := swar.LoadBE64(b, i)
		if wa < wb {
			return Less
		}
		if wa > wb {
			return Greater
		}
	}
	for ; i < shorter; i++ {
		if a[i] < b[i] {
			return Less
		}
		if a[i] > b[i] {
			return Greater
		}
	}

	switch {
	case len(a) < len(b):
		return Less
	case len(a) > len(b):
		return Greater
	default:
		return OrderEqual
	}
}

// OrderTerminated compares two NUL-terminated byte strings the way LibC's
// strcmp does: a and b are read only up to (and including) their first NUL
// byte. Provided at the API edge for LibC parity; the rest of this package
// works on explicit (ptr, length) pairs instead.
func OrderTerminated(a, b []byte) Ordering {
	return Order(terminatedSlice(a), terminatedSlice(b))
}

func terminatedSlice(s []byte) []byte {
	if i := FindByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
