// File: internal/thread/tls.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// TID-keyed per-thread storage cell. The table is sharded and each shard is
// cache-line padded: Get sits on the hot path of every runtime helper that
// resolves its own control block.

package thread

import (
	"fmt"
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-thread/api"
)

// slotShards must be a power of two.
const slotShards = 64

type slotShard struct {
	mu     sync.RWMutex
	blocks map[api.ThreadID]*api.ControlBlock
	_      cpu.CacheLinePad
}

// LocalSlot is the production per-thread cell: one live entry per
// bootstrapped thread, keyed by the platform thread id. The calling
// goroutine must be locked to its OS thread for Set and Get to be
// meaningful.
type LocalSlot struct {
	shards [slotShards]slotShard
}

// NewLocalSlot returns an empty cell table.
func NewLocalSlot() *LocalSlot {
	s := &LocalSlot{}
	for i := range s.shards {
		s.shards[i].blocks = make(map[api.ThreadID]*api.ControlBlock)
	}
	return s
}

func (s *LocalSlot) shard(tid api.ThreadID) *slotShard {
	return &s.shards[uint64(tid)&(slotShards-1)]
}

// Set installs block for the calling thread and returns the thread id.
// Exactly one live installation per thread is permitted; a second install
// reports ErrSlotOccupied flavored with the offending tid.
func (s *LocalSlot) Set(block *api.ControlBlock) (api.ThreadID, error) {
	tid, err := currentThreadID()
	if err != nil {
		return 0, err
	}
	sh := s.shard(tid)
	sh.mu.Lock()
	if _, exists := sh.blocks[tid]; exists {
		sh.mu.Unlock()
		return tid, fmt.Errorf("tid %d: %w", tid, api.ErrSlotOccupied)
	}
	sh.blocks[tid] = block
	sh.mu.Unlock()
	return tid, nil
}

// Get returns the calling thread's control block, if one is installed.
func (s *LocalSlot) Get() (*api.ControlBlock, bool) {
	tid, err := currentThreadID()
	if err != nil {
		return nil, false
	}
	sh := s.shard(tid)
	sh.mu.RLock()
	b, ok := sh.blocks[tid]
	sh.mu.RUnlock()
	return b, ok
}

// Clear releases tid's cell. The OS reuses thread ids, so the entry must go
// when its thread does; this is the map-backed analog of TLS dying with the
// thread.
func (s *LocalSlot) Clear(tid api.ThreadID) {
	sh := s.shard(tid)
	sh.mu.Lock()
	delete(sh.blocks, tid)
	sh.mu.Unlock()
}

// processSlot is the process-wide cell table shared by production launchers.
// Tests construct private tables through NewLocalSlot.
var processSlot = NewLocalSlot()

// ProcessSlot returns the shared production cell table.
func ProcessSlot() api.Slot { return processSlot }

// CurrentBlock returns the calling thread's control block, if the thread was
// bootstrapped or adopted through a production launcher.
func CurrentBlock() (*api.ControlBlock, bool) { return processSlot.Get() }
