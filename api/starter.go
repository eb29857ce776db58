// Package api
// Author: momentics <momentics@gmail.com>
//
// Downward contract to the operating system's thread-creation facility.

package api

// ThreadStarter abstracts native thread creation. Exactly one new dedicated
// thread comes into existence per successful StartThread call; run executes
// as the first code on that thread and owns it until return, at which point
// the thread is destroyed.
//
// The bootstrap payload travels inside the run closure: a single-ownership
// move from the requesting thread to the new one, never a shared reference.
//
// Production starters are infallible or nearly so; the error return exists
// for resource-limited shims and fault-injecting fakes. A starter must never
// retry internally: one call, at most one thread.
type ThreadStarter interface {
	StartThread(cfg ThreadConfig, run func()) error
}
