//go:build windows
// +build windows

// File: internal/thread/tls_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows thread identity via GetCurrentThreadId.

package thread

import (
	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-thread/api"
)

func currentThreadID() (api.ThreadID, error) {
	return api.ThreadID(windows.GetCurrentThreadId()), nil
}
