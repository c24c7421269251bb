//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupt delivery and returns the prior state.
// The window between disable and restore must stay a handful of register
// copies long: the pulse ISR is blocked for its duration.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts re-enables interrupt delivery.
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
