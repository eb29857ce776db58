// File: internal/thread/osproc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Default ThreadStarter. Each call dedicates one OS thread: the bootstrap
// goroutine locks itself to its thread and never unlocks, so the Go runtime
// destroys the thread when run returns. Thread lifetime equals the lifetime
// of the handed-off work; nothing is pooled or reused.

package thread

import (
	"log"
	"runtime"

	"github.com/momentics/hioload-thread/affinity"
	"github.com/momentics/hioload-thread/api"
)

// sysStarter provisions dedicated threads through the Go runtime.
type sysStarter struct{}

// NewSysStarter returns the production thread starter.
func NewSysStarter() api.ThreadStarter { return sysStarter{} }

// StartThread creates one dedicated native thread and runs run on it.
// Goroutine creation itself cannot fail; OS-level thread exhaustion aborts
// the process inside the runtime, which coincides with the module's fatal
// creation policy. The error return serves starters that can fail early.
func (sysStarter) StartThread(cfg api.ThreadConfig, run func()) error {
	go func() {
		runtime.LockOSThread()
		provisionThread(cfg)
		run()
	}()
	return nil
}

// provisionThread applies OS-level parameters to the calling thread before
// the bootstrap sequence runs. Provisioning failures are reported and
// tolerated: a thread without its preferred CPU is degraded, not broken.
func provisionThread(cfg api.ThreadConfig) {
	if cfg.Name != "" {
		setThreadName(cfg.Name)
	}
	if cfg.CPU >= 0 {
		if err := affinity.Pin(cfg.CPU); err != nil {
			log.Printf("thread: pin to cpu %d failed: %v", cfg.CPU, err)
		}
	}
}
