//go:build linux

package engine

import (
	"golang.org/x/sys/unix"
	"time"
)

// clockBase - Zero point for the stdlib fallback reading
var clockBase = time.Now()

// monotonicNow - Reads the raw monotonic clock which is immune to NTP adjustments.
// A rejected reading, for instance on a kernel without the raw clock, falls back to
// the stdlib monotonic reading.
func monotonicNow() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		return time.Since(clockBase)
	}

	return time.Duration(ts.Nano())
}
