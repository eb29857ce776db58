// File: internal/thread/launcher.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread launcher and entry trampoline. Start provisions exactly one
// dedicated OS thread per call and never retries: a creation failure is a
// fatal process error, matching loader expectations that a scheduler slot
// either comes up or the process dies.

package thread

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-thread/api"
	"github.com/momentics/hioload-thread/control"
)

// fatalf aborts the process after an unrecoverable bootstrap error.
// A variable so the abort path itself stays testable.
var fatalf = func(format string, args ...any) {
	log.Printf(format, args...)
	os.Exit(2)
}

// Config assembles a Launcher. Nil fields fall back to production
// defaults; tests inject fakes through the same fields.
type Config struct {
	Starter   api.ThreadStarter
	Crosscall api.Crosscall
	Slot      api.Slot
	Metrics   *control.MetricsRegistry
	Journal   *control.Journal
	Probes    *control.DebugProbes

	// NamePrefix labels spawned threads; names come out as prefix-N.
	NamePrefix string
	// CPU pins every spawned thread to one core when >= 0.
	// DefaultConfig sets -1, leaving placement to the OS scheduler.
	CPU int
	// NUMANode records the preferred node when >= 0. Advisory only.
	NUMANode int
}

// DefaultConfig returns a Config with production defaults and placement
// left to the OS scheduler.
func DefaultConfig() Config {
	return Config{CPU: -1, NUMANode: -1, NamePrefix: "hioload"}
}

// Launcher creates dedicated OS threads and hands them to scheduler entry
// functions. One Start call is one thread; the launcher keeps no pool and
// no free list.
type Launcher struct {
	starter  api.ThreadStarter
	cross    api.Crosscall
	slot     api.Slot
	metrics  *control.MetricsRegistry
	journal  *control.Journal
	registry *Registry
	prefix   string
	cpu      int
	numa     int
	seq      uint64
}

// NewLauncher builds a launcher from cfg, filling production defaults for
// nil components.
func NewLauncher(cfg Config) *Launcher {
	l := &Launcher{
		starter:  cfg.Starter,
		cross:    cfg.Crosscall,
		slot:     cfg.Slot,
		metrics:  cfg.Metrics,
		journal:  cfg.Journal,
		registry: NewRegistry(),
		prefix:   cfg.NamePrefix,
		cpu:      cfg.CPU,
		numa:     cfg.NUMANode,
	}
	if l.starter == nil {
		l.starter = NewSysStarter()
	}
	if l.cross == nil {
		l.cross = NewDirectCrosscall()
	}
	if l.slot == nil {
		l.slot = processSlot
	}
	if l.metrics == nil {
		l.metrics = control.NewMetricsRegistry()
	}
	if l.journal == nil {
		l.journal = control.NewJournal(0)
	}
	if l.prefix == "" {
		l.prefix = "hioload"
	}
	if cfg.Probes != nil {
		cfg.Probes.RegisterProbe("threads.count", func() any { return l.registry.Count() })
		cfg.Probes.RegisterProbe("threads.snapshot", func() any { return l.registry.Snapshot() })
	}
	return l
}

// Start launches one dedicated OS thread running entry with block.
// The startup descriptor moves to the new thread and is consumed exactly
// once there. Creation failure is fatal and is never retried; the handoff
// itself takes no locks.
func (l *Launcher) Start(entry api.EntryFunc, block *api.ControlBlock) {
	if entry == nil {
		panic("thread: Start with nil entry")
	}
	if block == nil {
		panic("thread: Start with nil control block")
	}
	d := newDescriptor(entry, block)
	l.metrics.Inc("descriptors.allocated")
	cfg := api.ThreadConfig{
		StackSize: StackSize,
		Name:      l.nextName(),
		CPU:       l.cpu,
		NUMANode:  l.numa,
	}
	if err := l.starter.StartThread(cfg, func() { l.trampoline(cfg, d) }); err != nil {
		l.metrics.Inc("starter.failures")
		l.journal.Record(control.Event{Kind: control.EventStartFailed, Note: err.Error()})
		fatalf("thread: failed to create new OS thread: %v", err)
		return
	}
}

// trampoline runs first on each spawned thread. The sequence is fixed:
// consume the descriptor, capture the stack top, record the usable window
// in the control block, install the block in the thread's slot, then hand
// control to the entry function. Work that outlives the entry call does
// not exist; when Invoke returns the thread is done.
func (l *Launcher) trampoline(cfg api.ThreadConfig, d *startDescriptor) {
	ts := d.consume()
	l.metrics.Inc("descriptors.released")

	// The payload copy is the first object of the entry frame on the new
	// thread; its address approximates the stack top from below.
	hi := uintptr(unsafe.Pointer(&ts))
	ts.block.StackLo, ts.block.StackHi = stackBounds(hi)

	tid, err := l.slot.Set(ts.block)
	if err != nil {
		if errors.Is(err, api.ErrSlotOccupied) {
			panic(fmt.Sprintf("thread: slot for tid %d already holds a control block", tid))
		}
		fatalf("thread: cannot install per-thread control block: %v", err)
		return
	}
	defer l.slot.Clear(tid)

	id := l.registry.add(tid, cfg.Name, ts.block)
	l.metrics.Set("threads.live", l.registry.Count())
	defer func() {
		l.registry.remove(id)
		l.metrics.Set("threads.live", l.registry.Count())
	}()

	l.journal.Record(control.Event{Kind: control.EventStarted, ID: id, TID: uint64(tid), Note: cfg.Name})
	l.metrics.Inc("threads.started")
	defer func() {
		l.journal.Record(control.Event{Kind: control.EventExited, ID: id, TID: uint64(tid), Note: cfg.Name})
		l.metrics.Inc("threads.exited")
	}()

	l.cross.Invoke(ts.entry, ts.block)
}

// Adopt installs block for an already-running thread, typically the
// process main thread. The caller must hold its thread via
// runtime.LockOSThread for the recorded bounds to stay meaningful.
// Unlike spawned threads, adopted threads keep their slot entry for the
// life of the process.
func (l *Launcher) Adopt(block *api.ControlBlock) error {
	if block == nil {
		return fmt.Errorf("thread: adopt: %w", api.ErrInvalidArgument)
	}
	var anchor byte
	block.StackLo, block.StackHi = stackBounds(uintptr(unsafe.Pointer(&anchor)))
	tid, err := l.slot.Set(block)
	if err != nil {
		return fmt.Errorf("thread: adopt: %w", err)
	}
	id := l.registry.add(tid, l.prefix+"-adopted", block)
	l.metrics.Set("threads.live", l.registry.Count())
	l.metrics.Inc("threads.adopted")
	l.journal.Record(control.Event{Kind: control.EventAdopted, ID: id, TID: uint64(tid)})
	return nil
}

func (l *Launcher) nextName() string {
	return fmt.Sprintf("%s-%d", l.prefix, atomic.AddUint64(&l.seq, 1))
}

// Snapshot lists the live threads bootstrapped through this launcher.
func (l *Launcher) Snapshot() []api.ThreadInfo { return l.registry.Snapshot() }

// Count reports the number of live bootstrapped threads.
func (l *Launcher) Count() int { return l.registry.Count() }

var _ api.Launcher = (*Launcher)(nil)
