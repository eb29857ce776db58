// File: launch/options.go
// Package launch defines functional options for the Launcher facade.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package launch

import (
	"github.com/momentics/hioload-thread/api"
	"github.com/momentics/hioload-thread/control"
)

// Option customizes launcher initialization.
type Option func(*Launcher)

// WithStarter replaces the thread creation primitive. Tests use this to
// inject fakes; specialized builds use it to route creation through a
// foreign runtime.
func WithStarter(s api.ThreadStarter) Option {
	return func(ln *Launcher) { ln.cfg.Starter = s }
}

// WithCrosscall replaces the convention-crossing handoff primitive.
func WithCrosscall(c api.Crosscall) Option {
	return func(ln *Launcher) { ln.cfg.Crosscall = c }
}

// WithSlot replaces the per-thread control block table. Launchers sharing
// a slot table share Current visibility.
func WithSlot(s api.Slot) Option {
	return func(ln *Launcher) { ln.cfg.Slot = s }
}

// WithAffinity pins every spawned thread to cpu (when >= 0) and records
// the preferred NUMA node.
func WithAffinity(cpu, numaNode int) Option {
	return func(ln *Launcher) {
		ln.cfg.CPU = cpu
		ln.cfg.NUMANode = numaNode
	}
}

// WithNamePrefix overrides the default thread name prefix.
func WithNamePrefix(prefix string) Option {
	return func(ln *Launcher) { ln.cfg.NamePrefix = prefix }
}

// WithMetrics routes lifecycle counters into mr.
func WithMetrics(mr *control.MetricsRegistry) Option {
	return func(ln *Launcher) { ln.cfg.Metrics = mr }
}

// WithJournal routes lifecycle events into j.
func WithJournal(j *control.Journal) Option {
	return func(ln *Launcher) { ln.cfg.Journal = j }
}

// WithProbes registers this launcher's debug probes on dp.
func WithProbes(dp *control.DebugProbes) Option {
	return func(ln *Launcher) { ln.cfg.Probes = dp }
}
