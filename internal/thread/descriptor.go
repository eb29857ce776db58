// File: internal/thread/descriptor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-shot startup descriptor moved from the requesting thread to the new
// thread. Allocation and release are instrumented so ownership bugs surface
// as panics and counters instead of memory corruption.

package thread

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-thread/api"
)

// Descriptor incarnation states.
const (
	descLive uint32 = iota
	descConsumed
)

// startDescriptor carries the handoff payload for exactly one new thread.
// It is allocated immediately before thread creation, moved into the
// bootstrap closure, and consumed as the new thread's first action. No
// descriptor outlives its single consumer.
type startDescriptor struct {
	entry api.EntryFunc
	block *api.ControlBlock
	state uint32
}

// payload is the by-value copy taken out of a descriptor at consumption.
type payload struct {
	entry api.EntryFunc
	block *api.ControlBlock
}

var descPool = sync.Pool{New: func() any { return new(startDescriptor) }}

// Process-wide descriptor accounting. Released must always catch up with
// allocated; the difference is the number of descriptors currently in flight.
var (
	descAllocated uint64
	descReleased  uint64
)

// newDescriptor allocates a live descriptor carrying entry and block.
func newDescriptor(entry api.EntryFunc, block *api.ControlBlock) *startDescriptor {
	d := descPool.Get().(*startDescriptor)
	d.entry = entry
	d.block = block
	atomic.StoreUint32(&d.state, descLive)
	atomic.AddUint64(&descAllocated, 1)
	return d
}

// consume moves the payload out and releases the descriptor's storage. A
// second consume of the same incarnation is an ownership violation and
// panics: exactly one trampoline run ever reads a given descriptor.
func (d *startDescriptor) consume() payload {
	if !atomic.CompareAndSwapUint32(&d.state, descLive, descConsumed) {
		panic("thread: startup descriptor consumed twice")
	}
	p := payload{entry: d.entry, block: d.block}
	d.entry = nil
	d.block = nil
	atomic.AddUint64(&descReleased, 1)
	descPool.Put(d)
	return p
}

// descriptorCounts reports (allocated, released) since process start.
func descriptorCounts() (allocated, released uint64) {
	return atomic.LoadUint64(&descAllocated), atomic.LoadUint64(&descReleased)
}
