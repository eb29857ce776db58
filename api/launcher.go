// Package api
// Author: momentics <momentics@gmail.com>
//
// Launcher contract: native thread provisioning for a managed runtime.

package api

// Launcher provisions dedicated native threads. Each Start call creates
// exactly one new thread that runs until its handed-off work returns; there
// is no pooling, reuse or shutdown management at this layer.
type Launcher interface {
	// Start creates one new native thread, runs the bootstrap sequence on it
	// and transfers control to entry. Start returns once OS-level creation
	// succeeded; it makes no claim about bootstrap progress on the new
	// thread, so callers must not read block until the new thread's work
	// is visible. Creation failure is unrecoverable and aborts the process.
	Start(entry EntryFunc, block *ControlBlock)

	// Adopt runs the bootstrap bookkeeping on the calling thread instead of
	// a new one: it records the stack window into block and installs the
	// block into the per-thread cell. The calling goroutine must already be
	// locked to its OS thread. Typically used once, by the process main
	// thread, before the first Start.
	Adopt(block *ControlBlock) error
}
