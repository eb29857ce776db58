// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// are located in separate files (affinity_linux.go, affinity_windows.go,
// etc.) guarded by build tags.

package affinity

import "errors"

// ErrNotSupported reports that the platform has no thread affinity control.
var ErrNotSupported = errors.New("affinity: not supported on this platform")

// Pin binds the calling OS thread to a given logical CPU on supported
// platforms. The caller is expected to hold its thread via
// runtime.LockOSThread; otherwise the Go scheduler may move the goroutine
// off the pinned thread.
func Pin(cpuID int) error {
	if cpuID < 0 {
		return errors.New("affinity: negative cpu id")
	}
	return pinPlatform(cpuID)
}

// Unpin restores the calling thread's affinity to all online CPUs.
func Unpin() error {
	return unpinPlatform()
}
