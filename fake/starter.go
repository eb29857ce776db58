// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the bootstrap contracts.

package fake

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-thread/api"
)

// Starter is a fake implementation of api.ThreadStarter for testing.
// By default it behaves like the production starter and runs the bootstrap
// on a dedicated locked thread. Inline mode runs it synchronously on the
// caller, and a configured failure simulates thread creation failing
// before anything runs.
type Starter struct {
	mu       sync.Mutex
	configs  []api.ThreadConfig
	calls    uint64
	failWith error
	inline   bool
}

// NewStarter creates a new fake starter with default settings.
func NewStarter() *Starter {
	return &Starter{}
}

// StartThread implements api.ThreadStarter.
func (s *Starter) StartThread(cfg api.ThreadConfig, run func()) error {
	atomic.AddUint64(&s.calls, 1)
	s.mu.Lock()
	s.configs = append(s.configs, cfg)
	fail := s.failWith
	inline := s.inline
	s.mu.Unlock()

	if fail != nil {
		return fail
	}
	if inline {
		run()
		return nil
	}
	go func() {
		runtime.LockOSThread()
		run()
	}()
	return nil
}

// SetFailure configures the starter to return err from every StartThread.
func (s *Starter) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// SetInline makes StartThread run the bootstrap on the calling thread.
func (s *Starter) SetInline(inline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inline = inline
}

// Calls returns how many times StartThread was invoked.
func (s *Starter) Calls() uint64 { return atomic.LoadUint64(&s.calls) }

// Configs returns the recorded per-call thread configurations.
func (s *Starter) Configs() []api.ThreadConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.ThreadConfig, len(s.configs))
	copy(out, s.configs)
	return out
}

var _ api.ThreadStarter = (*Starter)(nil)
