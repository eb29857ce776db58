//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific implementation for setting thread CPU affinity.

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

var (
	modkernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = modkernel32.NewProc("SetThreadAffinityMask")
)

// currentThread is the GetCurrentThread pseudo-handle.
func currentThread() uintptr { return ^uintptr(1) }

// pinPlatform binds the calling thread to cpuID. Affinity masks address a
// single processor group, so only the first 64 logical CPUs are reachable.
func pinPlatform(cpuID int) error {
	if cpuID >= 64 {
		return fmt.Errorf("affinity: cpu %d outside the primary processor group", cpuID)
	}
	mask := uintptr(1) << uint(cpuID)
	ret, _, err := procSetThreadAffinityMask.Call(currentThread(), mask)
	if ret == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask(cpu=%d): %w", cpuID, err)
	}
	return nil
}

// unpinPlatform widens the calling thread's mask to every CPU in the
// primary processor group.
func unpinPlatform() error {
	n := runtime.NumCPU()
	if n > 64 {
		n = 64
	}
	var mask uintptr
	for i := 0; i < n; i++ {
		mask |= uintptr(1) << uint(i)
	}
	ret, _, err := procSetThreadAffinityMask.Call(currentThread(), mask)
	if ret == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask(all): %w", err)
	}
	return nil
}
