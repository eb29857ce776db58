// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/momentics/hioload-thread/api"
)

// Crosscall records every handoff before delegating to the wrapped
// primitive, or calls entry directly when nothing is wrapped.
type Crosscall struct {
	mu     sync.Mutex
	blocks []*api.ControlBlock
	wrap   api.Crosscall
}

// NewCrosscall creates a recording crosscall around wrap (may be nil).
func NewCrosscall(wrap api.Crosscall) *Crosscall {
	return &Crosscall{wrap: wrap}
}

// Invoke implements api.Crosscall.
func (c *Crosscall) Invoke(entry api.EntryFunc, block *api.ControlBlock) {
	c.mu.Lock()
	c.blocks = append(c.blocks, block)
	c.mu.Unlock()
	if c.wrap != nil {
		c.wrap.Invoke(entry, block)
		return
	}
	entry(block)
}

// Blocks returns the control blocks seen by Invoke, in handoff order.
func (c *Crosscall) Blocks() []*api.ControlBlock {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*api.ControlBlock, len(c.blocks))
	copy(out, c.blocks)
	return out
}

var _ api.Crosscall = (*Crosscall)(nil)
