// File: internal/thread/crosscall.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread

import (
	"github.com/momentics/hioload-thread/api"
)

// directCrosscall is the identity convention bridge: entry and trampoline
// share a calling convention, so the handoff is a plain call. Builds that
// cross an ABI boundary inject their own api.Crosscall instead.
type directCrosscall struct{}

// NewDirectCrosscall returns the same-convention handoff primitive.
func NewDirectCrosscall() api.Crosscall { return directCrosscall{} }

func (directCrosscall) Invoke(entry api.EntryFunc, block *api.ControlBlock) {
	entry(block)
}
