// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared type declarations and DTOs for the thread bootstrap chain.

package api

import "time"

// ControlBlock is the per-thread state block a managed runtime associates
// with each native thread it owns. This module touches exactly two fields:
// the conservative stack window recorded during bootstrap. Embedders carry
// the rest of their per-thread state by embedding or wrapping ControlBlock.
//
// Once a thread's bootstrap completes, the block is owned by that thread;
// the stack fields are written once, before the handoff, and read-only after.
type ControlBlock struct {
	// StackLo is the lower bound of the usable stack window.
	StackLo uintptr
	// StackHi is an address near the top of the thread's stack, captured at
	// thread entry. StackLo < StackHi always holds, and the window
	// [StackLo, StackHi] is a strict subset of the real OS allocation.
	StackHi uintptr
}

// EntryFunc is the runtime entry point a freshly provisioned thread hands
// control to. On the success path it returns only when the thread's entire
// body of work is done; the thread is torn down afterwards.
type EntryFunc func(block *ControlBlock)

// ThreadID is the platform identity of a native thread: the kernel task id
// on Linux, the thread identifier on Windows.
type ThreadID uint64

// ThreadConfig carries the provisioning parameters for one new native thread.
type ThreadConfig struct {
	// StackSize is the stack reservation requested from starters that honor
	// per-thread sizing. Bounds bookkeeping during bootstrap is always
	// derived from this value, whoever sized the stack.
	StackSize uintptr

	// Name is an optional scheduler-visible thread name.
	Name string

	// CPU pins the new thread to a logical processor when >= 0.
	CPU int

	// NUMANode is the preferred NUMA node when >= 0.
	NUMANode int
}

// ThreadInfo describes one live bootstrapped thread, as reported by the
// launcher's registry snapshot.
type ThreadInfo struct {
	ID      uint64
	TID     ThreadID
	Name    string
	StackLo uintptr
	StackHi uintptr
	Started time.Time
}
