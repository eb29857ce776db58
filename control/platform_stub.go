//go:build !linux && !windows
// +build !linux,!windows

// control/platform_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback probe registration for platforms without specific hooks.

package control

import (
	"runtime"
)

// RegisterPlatformProbes sets generic debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
}
