//go:build windows
// +build windows

// File: internal/thread/osproc_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadDescription = modkernel32.NewProc("SetThreadDescription")
)

// setThreadName labels the calling thread via SetThreadDescription.
// The API appeared in Windows 10 1607; on older systems the lookup fails
// and the name is silently skipped.
func setThreadName(name string) {
	if procSetThreadDescription.Find() != nil {
		return
	}
	desc, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return
	}
	// GetCurrentThread pseudo-handle, always refers to the caller.
	h := windows.Handle(^uintptr(1))
	procSetThreadDescription.Call(uintptr(h), uintptr(unsafe.Pointer(desc)))
}
