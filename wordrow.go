package stringzilla

import "encoding/binary"

// wordRow views a byte slice as a row of 8-byte little-endian cells, used by
// the word-sized DP paths in Levenshtein and AlignmentScore. It exists
// instead of an unsafe []uint64 cast so that scratch buffers remain plain
// []byte end to end, matching internal/swar's own preference for
// encoding/binary over unsafe pointer games.
type wordRow []byte

func newWordRow(b []byte) wordRow { return wordRow(b) }

func (r wordRow) get(i int) uint64 {
	return binary.LittleEndian.Uint64(r[8*i : 8*i+8])
}

func (r wordRow) set(i int, v uint64) {
	binary.LittleEndian.PutUint64(r[8*i:8*i+8], v)
}

func (r wordRow) getSigned(i int) int64 {
	return int64(r.get(i))
}

func (r wordRow) setSigned(i int, v int64) {
	r.set(i, uint64(v))
}
