// File: internal/thread/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-thread/api"
)

// threadRecord is one live bootstrapped thread.
type threadRecord struct {
	id      uint64
	tid     api.ThreadID
	name    string
	block   *api.ControlBlock
	started time.Time
}

// Registry tracks threads between bootstrap and exit. It is observational
// only: the handoff path never reads it, so its lock is off the critical
// sequence and exists purely for snapshot consistency.
type Registry struct {
	mu     sync.RWMutex
	live   map[uint64]*threadRecord
	nextID uint64
}

// NewRegistry returns an empty thread registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[uint64]*threadRecord)}
}

func (r *Registry) add(tid api.ThreadID, name string, block *api.ControlBlock) uint64 {
	id := atomic.AddUint64(&r.nextID, 1)
	rec := &threadRecord{
		id:      id,
		tid:     tid,
		name:    name,
		block:   block,
		started: time.Now(),
	}
	r.mu.Lock()
	r.live[id] = rec
	r.mu.Unlock()
	return id
}

func (r *Registry) remove(id uint64) {
	r.mu.Lock()
	delete(r.live, id)
	r.mu.Unlock()
}

// Count reports the number of live registered threads.
func (r *Registry) Count() int {
	r.mu.RLock()
	n := len(r.live)
	r.mu.RUnlock()
	return n
}

// Snapshot copies the live set for inspection and debug probes.
func (r *Registry) Snapshot() []api.ThreadInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]api.ThreadInfo, 0, len(r.live))
	for _, rec := range r.live {
		out = append(out, api.ThreadInfo{
			ID:      rec.id,
			TID:     rec.tid,
			Name:    rec.name,
			StackLo: rec.block.StackLo,
			StackHi: rec.block.StackHi,
			Started: rec.started,
		})
	}
	return out
}
