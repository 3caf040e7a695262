//go:build !linux

package engine

// pinThread - CPU pinning is only in effect on Linux
func pinThread(_ int) (err error) {
	return
}
