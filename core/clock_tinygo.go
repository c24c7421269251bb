//go:build tinygo

package core

import "time"

var bootTime = time.Now()

// nowMicros reads the monotonic clock relative to boot.
func nowMicros() uint64 {
	return uint64(time.Since(bootTime).Microseconds())
}
