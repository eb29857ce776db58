//go:build !linux && !windows
// +build !linux,!windows

// File: internal/thread/osproc_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread

// setThreadName is a no-op on platforms without a thread naming syscall.
func setThreadName(string) {}
