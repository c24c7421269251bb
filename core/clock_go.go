//go:build !tinygo

package core

var clockMicros uint64

// nowMicros returns the simulated clock (regular Go implementation).
func nowMicros() uint64 {
	return clockMicros
}

// SetClockMicros sets the simulated clock (for testing/host integration).
func SetClockMicros(us uint64) {
	clockMicros = us
}

// AdvanceClockMicros advances the simulated clock.
func AdvanceClockMicros(us uint64) {
	clockMicros += us
}
