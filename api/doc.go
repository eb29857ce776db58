// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api declares the contracts of hioload-thread: native thread
// provisioning for managed-runtime schedulers, the per-thread control-block
// cell, and the bootstrap handoff chain.
//
// All cross-package interfaces live here so production implementations,
// fakes and embedder-supplied primitives stay interchangeable:
//   - Launcher: one call, one new fully provisioned native thread
//   - ThreadStarter: the downward interface to the OS thread facility
//   - Slot: typed per-thread storage cell for control blocks
//   - Crosscall: convention-crossing transfer into the runtime entry
package api
