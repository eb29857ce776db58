//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.
// Returns ErrNotSupported to indicate unavailability.

package affinity

// pinPlatform is a stub for platforms where CPU affinity is not supported.
func pinPlatform(int) error { return ErrNotSupported }

// unpinPlatform is a stub for platforms where CPU affinity is not supported.
func unpinPlatform() error { return ErrNotSupported }
