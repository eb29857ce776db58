//go:build !linux && !windows
// +build !linux,!windows

// File: internal/thread/tls_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub for platforms without a supported thread-identity source. The
// per-thread cell is a hard requirement of the bootstrap sequence, so this
// is a configuration error, not a degraded mode.

package thread

import "github.com/momentics/hioload-thread/api"

func currentThreadID() (api.ThreadID, error) {
	return 0, api.ErrSlotUnsupported
}
