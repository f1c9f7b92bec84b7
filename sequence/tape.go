package sequence

// tapeSource implements Source over an Apache-Arrow-style layout: one
// contiguous byte tape plus count+1 offsets, where the last offset equals
// the tape's total length.
type tapeSource struct {
	tape    []byte
	offsets []int
}

func (t *tapeSource) Count() int           { return len(t.offsets) - 1 }
func (t *tapeSource) GetStart(i int) []byte { return t.tape[t.offsets[i]:] }
func (t *tapeSource) GetLength(i int) int   { return t.offsets[i+1] - t.offsets[i] }

// FromU32Tape builds a Source over an Arrow-style tape with 32-bit offsets.
// len(offsets) must be count+1, with offsets[len(offsets)-1] == len(tape).
func FromU32Tape(tape []byte, offsets []uint32) Source {
	converted := make([]int, len(offsets))
	for i, o := range offsets {
		converted[i] = int(o)
	}
	return &tapeSource{tape: tape, offsets: converted}
}

// FromU64Tape builds a Source over an Arrow-style tape with 64-bit offsets.
func FromU64Tape(tape []byte, offsets []uint64) Source {
	converted := make([]int, len(offsets))
	for i, o := range offsets {
		converted[i] = int(o)
	}
	return &tapeSource{tape: tape, offsets: converted}
}

// sliceSource implements Source over a plain [][]byte: each logical string
// is independently owned caller memory rather than one shared tape, for
// callers who don't have an Arrow tape handy.
type sliceSource struct {
	strs [][]byte
}

func (s *sliceSource) Count() int           { return len(s.strs) }
func (s *sliceSource) GetStart(i int) []byte { return s.strs[i] }
func (s *sliceSource) GetLength(i int) int   { return len(s.strs[i]) }

// FromStrings builds a Source over an in-memory slice of byte strings.
func FromStrings(strs [][]byte) Source {
	return &sliceSource{strs: strs}
}

// IdentityOrder returns a freshly allocated indirection vector initialized
// to [0, 1, ..., count-1], the required pre-sort state. It is a
// convenience, not a requirement: callers that already hold scratch memory
// for Order should fill it themselves instead.
func IdentityOrder(count int) []uint64 {
	order := make([]uint64, count)
	for i := range order {
		order[i] = uint64(i)
	}
	return order
}
