//go:build linux

package engine

import (
	"golang.org/x/sys/unix"
)

// pinThread - Pins the calling OS thread to the given logical CPU. A rejected mask, for instance
// a worker id beyond the machine's CPU count, leaves the thread where the scheduler put it.
func pinThread(cpu int) (err error) {
	var cpuSet unix.CPUSet
	cpuSet.Zero()
	cpuSet.Set(cpu)

	err = unix.SchedSetaffinity(0, &cpuSet)

	return
}
