//go:build linux
// +build linux

// File: internal/thread/osproc_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// setThreadName labels the calling thread via prctl. The kernel caps comm
// names at 16 bytes including the terminator, so longer names are truncated.
func setThreadName(name string) {
	var buf [16]byte
	copy(buf[:15], name)
	_ = unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
}
