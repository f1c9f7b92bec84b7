package stringzilla

import (
	"math/bits"

	"github.com/michaelgrigoryan25/stringzilla/internal/swar"
)

const (
	hashC1 = 0x87c37b91114253d5
	hashC2 = 0x4cf5ad432745937f
)

// Hash computes a 64-bit hash derived from Murmur3's x64-128 variant,
// tailored for short strings. It runs both 64-bit lanes (h1, h2) of the
// original algorithm but returns their sum instead of the full 128-bit
// digest, and deliberately omits the final avalanche (fmix64) step. The
// result is deterministic for identical
// input bytes regardless of buffer alignment or host endianness, but is
// NOT bit-compatible with a standard Murmur3-x64-128 implementation; it
// exists purely as a fast, well-distributed hash for this library's own
// sequence-sort and dedup use, not as an interop format.
func Hash(buf []byte) uint64 {
	n := len(buf)
	h1, h2 := uint64(n), uint64(n)

	body := buf
	for len(body) >= 16 {
		k1 := swar.Load64(body, 0)
		k2 := swar.Load64(body, 8)

		k1 *= hashC1
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= hashC2
		h1 ^= k1
		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		k2 *= hashC2
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= hashC1
		h2 ^= k2
		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5

		body = body[16:]
	}

	var k1, k2 uint64
	tail := body // 0-15 bytes
	switch {
	case len(tail) >= 8:
		k1 = loadPartial64(tail[:8])
		k2 = loadPartial64WithZeroPad(tail[8:])
	default:
		k1 = loadPartial64WithZeroPad(tail)
	}

	if len(tail) > 0 {
		k2 *= hashC2
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= hashC1
		h2 ^= k2

		k1 *= hashC1
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= hashC2
		h1 ^= k1
	}

	return h1 + h2
}

// loadPartial64 reads exactly 8 bytes little-endian (used for the tail's
// first full 8-byte chunk, when at least 8 tail bytes remain).
func loadPartial64(b []byte) uint64 { return swar.Load64(b, 0) }

// loadPartial64WithZeroPad reads up to 7 remaining bytes (0-7), zero-padding
// the high bytes. Hash's tail gives k1 a full 8 bytes when at least 8 remain
// and k2 the other 0-7, otherwise k1 the whole 0-7 byte tail, the
// tail-handling split Murmur3-x64-128 uses.
func loadPartial64WithZeroPad(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
