// Package stringzilla is a library of byte-string primitives tuned for
// data-intensive workloads: columnar engines, search indexes, bioinformatics
// pipelines. It implements the serial (SWAR) algorithmic core — branch-light
// byte-parallel scanning, Bitap pattern matching, bounded edit distance,
// a MurmurHash-family short-string hash, and Needleman-Wunsch alignment —
// plus the sequence-sorting engine in the sibling sequence package.
//
// Every function here is pure: it reads caller-owned byte slices and
// returns a value or writes into a caller-supplied scratch buffer. Nothing
// in this package allocates on the hot path, retains a slice past return, or
// blocks. SIMD backends, CPU-feature dispatch, and language bindings are
// deliberately out of scope; see internal/swar for the lone piece of
// platform awareness this module carries (an informational unaligned-load
// probe), and the sequence package for sorting.
package stringzilla
