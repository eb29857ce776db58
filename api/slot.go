// Package api
// Author: momentics <momentics@gmail.com>
//
// Typed per-thread storage cell contract.

package api

// Slot is a process-wide, per-thread storage cell holding each bootstrapped
// thread's control block. It replaces a raw TLS slot index with a narrow,
// typed interface so the bootstrap logic stays portable.
//
// Set and Clear belong to the bootstrap sequence; Get may be called by
// arbitrary code running on a bootstrapped thread for the remainder of that
// thread's life.
type Slot interface {
	// Set installs block for the calling thread and returns the thread's
	// platform identity. The caller must be locked to its OS thread. Exactly
	// one live installation per thread is permitted; ErrSlotOccupied reports
	// a violation.
	Set(block *ControlBlock) (ThreadID, error)

	// Get returns the calling thread's control block, if one is installed.
	Get() (*ControlBlock, bool)

	// Clear releases the cell owned by tid. Thread identifiers are reused by
	// the OS, so the cell must be released when its thread exits.
	Clear(tid ThreadID)
}
