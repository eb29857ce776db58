//go:build windows
// +build windows

// control/platform_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific platform metrics and debug probe integrations.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procGetProcessAffinityMask = modkernel32.NewProc("GetProcessAffinityMask")
)

// RegisterPlatformProbes sets Windows-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.affinity_mask", func() any {
		var process, system uintptr
		ret, _, err := procGetProcessAffinityMask.Call(
			uintptr(windows.CurrentProcess()),
			uintptr(unsafe.Pointer(&process)),
			uintptr(unsafe.Pointer(&system)),
		)
		if ret == 0 {
			return err.Error()
		}
		return map[string]uint64{"process": uint64(process), "system": uint64(system)}
	})
}
