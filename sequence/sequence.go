// Package sequence implements a sequence-sorting engine: a read-only
// virtual string sequence addressed through two capability methods, plus an
// indirection vector permuted by Partition, Merge, Sort, SortPartial, and
// SortIntro. The underlying strings are never moved; only the indirection
// vector is mutated, and it is the sole mutable state the package touches.
package sequence

// Source is the read-only capability pair get_start/get_length: a set of
// count logical strings, addressable by index. GetStart returns a slice
// beginning at that logical string's first byte and extending to the end
// of the underlying storage (the Go equivalent of a raw pointer, since a
// slice already carries a length); GetLength reports how many of those
// bytes belong to the string. Callers combine the two themselves, or use
// Sequence.String.
//
// Implementations must be pure and side-effect-free for the duration of any
// call into this package, and Count must not change.
type Source interface {
	Count() int
	GetStart(logicalIndex int) []byte
	GetLength(logicalIndex int) int
}

// Sequence pairs a read-only Source with a caller-owned indirection vector.
// The vector must be len(Order) == Src.Count() and, before the first sort,
// initialized to [0, 1, ..., Count()-1].
type Sequence struct {
	Order []uint64
	Src   Source
}

// New builds a Sequence over src using the caller-provided order vector.
// order is not copied or reinitialized; the caller is responsible for its
// initial contents and lifetime.
func New(src Source, order []uint64) *Sequence {
	return &Sequence{Order: order, Src: src}
}

// Count returns the number of logical strings in the sequence.
func (s *Sequence) Count() int { return s.Src.Count() }

// String returns the logical string at the given logical index (not a slot
// in Order), combining GetStart and GetLength.
func (s *Sequence) String(logicalIndex int) []byte {
	start := s.Src.GetStart(logicalIndex)
	n := s.Src.GetLength(logicalIndex)
	return start[:n:n]
}

// At returns the logical string currently occupying slot i of the
// indirection vector, i.e. s.String(int(s.Order[i])).
func (s *Sequence) At(slot int) []byte {
	return s.String(int(s.Order[slot]))
}
