// File: internal/thread/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed stack geometry for provisioned threads.

package thread

// Stack geometry for every thread this module provisions.
//
// StackSize is 2 MiB, the default reservation for 64-bit targets; allocation
// granularity on Windows is typically 64 KiB. Image-level components that
// reserve stack regions for these threads assume the same number; keep them
// synchronized. There is no runtime override.
//
// StackGuard biases the window's low side upward, leaving headroom for the
// bootstrap's own frames before the handoff.
const (
	StackSize  uintptr = 2 * 1024 * 1024
	StackGuard uintptr = 8 * 1024
)

// stackBounds derives the usable stack window from the stack position
// captured at thread entry. hi is an address near the top of the new
// thread's stack; the derived window is a strict subset of the real OS
// allocation, so overflow checks against it never cross real boundaries.
func stackBounds(hi uintptr) (lo, top uintptr) {
	return hi - StackSize + StackGuard, hi
}

// boundsValid reports whether a recorded window satisfies the bootstrap
// invariants: ordered bounds and the exact fixed width.
func boundsValid(lo, hi uintptr) bool {
	return lo < hi && hi-lo == StackSize-StackGuard
}
