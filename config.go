package stringzilla

import "github.com/michaelgrigoryan25/stringzilla/internal/swar"

// UnalignedLoadsOK reports whether the host CPU is known to support fast
// native unaligned memory access, the kind of compile-time capability flag
// (USE_MISALIGNED_LOADS, USE_X86_AVX512, USE_ARM_NEON, ...) a dispatcher
// would use to pick a vector backend.
//
// This package's own loads (internal/swar) always go through
// encoding/binary, which is correct and reasonably fast on every
// architecture Go targets regardless of this flag; no code path here
// branches on it. It is exposed purely as diagnostic information for
// out-of-scope dispatch/backend collaborators.
func UnalignedLoadsOK() bool { return swar.UnalignedLoadsOK() }
