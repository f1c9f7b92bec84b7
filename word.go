package stringzilla

import "github.com/michaelgrigoryan25/stringzilla/internal/swar"

// Load16/Load32/Load64 perform endian-safe unaligned loads of the named
// width starting at byte offset off in b. Callers must ensure b has at
// least off+width bytes; out-of-range access panics via the normal slice
// bounds check.
func Load16(b []byte, off int) uint16 { return swar.Load16(b, off) }
func Load32(b []byte, off int) uint32 { return swar.Load32(b, off) }
func Load64(b []byte, off int) uint64 { return swar.Load64(b, off) }

// ByteSwap64 reverses the byte order of x.
func ByteSwap64(x uint64) uint64 { return swar.ByteSwap64(x) }

// CountTrailingZeros64 returns the number of trailing zero bits in x (64 for
// x == 0).
func CountTrailingZeros64(x uint64) int { return swar.CountTrailingZeros64(x) }

// CountLeadingZeros64 returns the number of leading zero bits in x (64 for
// x == 0).
func CountLeadingZeros64(x uint64) int { return swar.CountLeadingZeros64(x) }

// Ilog2 returns floor(log2(x)), and 0 for x == 0. Used by SortIntro to
// bound quicksort recursion depth before falling back to heapsort.
func Ilog2(x uint64) int { return swar.Ilog2(x) }

// Min2 returns the smaller of a and b.
func Min2(a, b int) int { return swar.Min2(a, b) }

// Min3 returns the smallest of a, b, c.
func Min3(a, b, c int) int { return swar.Min3(a, b, c) }
