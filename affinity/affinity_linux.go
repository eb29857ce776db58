//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation on top of sched_setaffinity. Operates on the
// calling thread (pid 0), no cgo involved.

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// pinPlatform binds the calling thread to cpuID.
func pinPlatform(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(cpu=%d): %w", cpuID, err)
	}
	return nil
}

// unpinPlatform widens the calling thread's mask back to every CPU the
// runtime knows about.
func unpinPlatform() error {
	var set unix.CPUSet
	set.Zero()
	for i := 0; i < runtime.NumCPU(); i++ {
		set.Set(i)
	}
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(all): %w", err)
	}
	return nil
}
