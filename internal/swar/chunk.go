package swar

// Each8 invokes fn for every full 8-byte word in b, in order, and returns
// the unconsumed tail: the trailing 0-7 bytes, or, if fn stops early, b from
// the stopping word onward.
func Each8(b []byte, fn func(word uint64) (stop bool)) (tail []byte) {
	off := 0
	for off+8 <= len(b) {
		if fn(Load64(b, off)) {
			return b[off:]
		}
		off += 8
	}
	return b[off:]
}

// ReverseEach8 walks b from the end in 8-byte words, invoking fn with the
// offset of each word's first byte. It returns the leading tail (0-7 bytes)
// left unconsumed once fewer than 8 bytes remain at the front.
func ReverseEach8(b []byte, fn func(off int, word uint64) (stop bool)) (tail []byte) {
	n := len(b)
	for off := n - 8; off >= 0; off -= 8 {
		if fn(off, Load64(b, off)) {
			return b[:off]
		}
	}
	return b[:n%8]
}
