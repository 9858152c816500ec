//go:build !linux
// +build !linux

package benchmark

import "runtime"

// PinToCPU locks the calling goroutine to its OS thread. CPU affinity is only
// supported on Linux, so the cpu number is otherwise ignored.
func PinToCPU(cpu int) (func(), error) {
	if cpu < 0 {
		return func() {}, nil
	}
	runtime.LockOSThread()
	return runtime.UnlockOSThread, nil
}
