package swar

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// unalignedLoadsOK reports the kind of thing a compile-time
// USE_MISALIGNED_LOADS flag would capture, but decided at init time from
// the running CPU's feature bits instead of a build flag, the way a simd
// package decides hasAVX2 at init.
//
// This package always performs unaligned loads via encoding/binary (which is
// safe on every architecture Go supports); the flag is purely informational,
// surfaced through config.go for callers who want to log or report it. It
// does not gate any code path here, since Go's encoding/binary already
// handles unaligned access portably and correctly.
var unalignedLoadsOK = probeUnalignedLoads()

func probeUnalignedLoads() bool {
	switch runtime.GOARCH {
	case "amd64":
		// All amd64 CPUs Go targets support fast unaligned loads natively;
		// cpu.X86.HasSSE2 is effectively always true but checked for parity
		// with how coregex gates its AVX2 path on a feature flag rather than
		// on GOARCH alone.
		return cpu.X86.HasSSE2
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		// 32-bit ARM, RISC-V, WASM, etc: unaligned access is either slow or
		// trapped and emulated, so report conservatively.
		return false
	}
}

// UnalignedLoadsOK reports whether the current CPU is known to have
// efficient native unaligned-load support. It never changes the behavior of
// this package's loads (always portable via encoding/binary); it exists so
// an out-of-scope dispatcher collaborator can make an informed choice about
// vectorized backends.
func UnalignedLoadsOK() bool { return unalignedLoadsOK }
