// Package api
// Author: momentics <momentics@gmail.com>
//
// Convention-crossing call primitive.

package api

// Crosscall transfers control from the native thread-entry convention into
// the managed runtime's own calling convention. The primitive is injected so
// embedders with a real convention gap (foreign ABIs, trampoline shims) can
// supply their own transfer routine; its internals are opaque to the
// bootstrap sequence.
//
// Invoke runs entry under the target convention. Under normal operation it
// returns only after the thread's entire body of work is complete; the
// bootstrap performs nothing but teardown afterwards.
type Crosscall interface {
	Invoke(entry EntryFunc, block *ControlBlock)
}
