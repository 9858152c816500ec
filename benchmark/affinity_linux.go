//go:build linux
// +build linux

package benchmark

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// PinToCPU locks the calling goroutine to its OS thread and restricts that
// thread to the given CPU. A negative cpu leaves scheduling alone.
func PinToCPU(cpu int) (func(), error) {
	if cpu < 0 {
		return func() {}, nil
	}

	var allowed unix.CPUSet
	if err := unix.SchedGetaffinity(0, &allowed); err != nil {
		return nil, fmt.Errorf("unable to get cpu affinity: %w", err)
	}
	if !allowed.IsSet(cpu) {
		return nil, fmt.Errorf("cpu %d is not available to this process (%d allowed)", cpu, allowed.Count())
	}

	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("unable to pin to cpu %d: %w", cpu, err)
	}

	// Restore the previous mask before handing the thread back to the scheduler.
	return func() {
		_ = unix.SchedSetaffinity(0, &allowed)
		runtime.UnlockOSThread()
	}, nil
}
