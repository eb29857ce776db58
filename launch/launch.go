// File: launch/launch.go
// Package launch is the public facade for dedicated-thread bootstrap.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A Launcher turns scheduler entry functions into dedicated OS threads:
// one Start call provisions one thread, records its usable stack window in
// the caller's control block, makes the block reachable from the thread
// itself, and hands control to the entry function. Adopt performs the same
// installation for a thread the runtime already owns, typically main.
// There is no pooling and no restart; a thread lives exactly as long as
// its entry call.

package launch

import (
	"sync"

	"github.com/momentics/hioload-thread/api"
	"github.com/momentics/hioload-thread/internal/thread"
)

// Stack geometry for every launched thread. Loader and link-time settings
// elsewhere assume these exact values; change them together or not at all.
const (
	StackSize  = thread.StackSize
	StackGuard = thread.StackGuard
)

// Launcher provisions dedicated OS threads for scheduler slots.
type Launcher struct {
	cfg thread.Config
	l   *thread.Launcher
}

// New builds a launcher with production defaults, customized by opts.
func New(opts ...Option) *Launcher {
	ln := &Launcher{cfg: thread.DefaultConfig()}
	for _, opt := range opts {
		opt(ln)
	}
	ln.l = thread.NewLauncher(ln.cfg)
	return ln
}

// Start creates one dedicated OS thread and runs entry on it with block.
// Thread creation failure aborts the process; Start itself returns as soon
// as the thread is handed off and never blocks on the new thread's
// progress.
func (ln *Launcher) Start(entry api.EntryFunc, block *api.ControlBlock) {
	ln.l.Start(entry, block)
}

// Adopt installs block for the calling thread without creating one.
// Callers must hold their thread via runtime.LockOSThread first.
func (ln *Launcher) Adopt(block *api.ControlBlock) error {
	return ln.l.Adopt(block)
}

// Snapshot lists the live threads bootstrapped through this launcher.
func (ln *Launcher) Snapshot() []api.ThreadInfo { return ln.l.Snapshot() }

// Count reports the number of live bootstrapped threads.
func (ln *Launcher) Count() int { return ln.l.Count() }

var _ api.Launcher = (*Launcher)(nil)

var (
	defaultOnce     sync.Once
	defaultLauncher *Launcher
)

// Default returns the shared process-wide launcher.
func Default() *Launcher {
	defaultOnce.Do(func() {
		defaultLauncher = New()
	})
	return defaultLauncher
}

// Start runs entry on a new dedicated thread via the shared launcher.
func Start(entry api.EntryFunc, block *api.ControlBlock) {
	Default().Start(entry, block)
}

// Adopt installs block for the calling thread via the shared launcher.
func Adopt(block *api.ControlBlock) error {
	return Default().Adopt(block)
}

// Current returns the calling thread's control block, if the thread was
// bootstrapped or adopted through a launcher using the shared slot table.
func Current() (*api.ControlBlock, bool) {
	return thread.CurrentBlock()
}
