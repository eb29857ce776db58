//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific platform metrics and debug probe integrations.

package control

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// RegisterPlatformProbes sets Linux-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.stack_rlimit", func() any {
		var lim unix.Rlimit
		if err := unix.Getrlimit(unix.RLIMIT_STACK, &lim); err != nil {
			return err.Error()
		}
		return map[string]uint64{"cur": lim.Cur, "max": lim.Max}
	})
}
