//go:build !linux

package engine

import "time"

// clockBase - Zero point for monotonic readings on platforms without the raw clock
var clockBase = time.Now()

// monotonicNow - Monotonic reading through the stdlib clock
func monotonicNow() time.Duration {
	return time.Since(clockBase)
}
