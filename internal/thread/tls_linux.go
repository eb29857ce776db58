//go:build linux
// +build linux

// File: internal/thread/tls_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux thread identity: the kernel task id via gettid(2). Stable for the
// life of the thread, reused by the kernel afterwards.

package thread

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-thread/api"
)

func currentThreadID() (api.ThreadID, error) {
	return api.ThreadID(unix.Gettid()), nil
}
