// Pulse capture for a single pulse-per-revolution tachometer input.
// The ISR side timestamps and debounces rising edges; the main loop
// drains the result through a short interrupt-masked window.
package core

// Tach is the single shared state cell crossing the interrupt boundary.
// HandlePulse (interrupt context) is the sole writer of lastPulseTime and
// pulseInterval; Snapshot (main context) is the sole reader and clearer of
// newData. A fresh pulse overwrites an unconsumed interval, so under
// back-pressure only the most recent interval survives. That loss is
// intentional: buffering would need a queue and synchronization the ISR
// must not pay for.
type Tach struct {
	debounceUS uint64

	lastPulseTime uint64 // Timestamp of the last accepted edge
	pulseInterval uint64 // Microseconds between the last two accepted edges
	newData       bool   // Set by HandlePulse, cleared by Snapshot
}

// NewTach returns a tach cell using the config's debounce threshold.
func NewTach(cfg Config) *Tach {
	return &Tach{debounceUS: cfg.DebounceThresholdUS}
}

// HandlePulse records a qualifying rising edge at time now. It runs in
// interrupt context and does nothing beyond subtract, compare and store:
// no allocation, no blocking, no locks. Edges within the debounce window
// of the previous accepted edge are dropped with no state change at all.
func (t *Tach) HandlePulse(now uint64) {
	elapsed := now - t.lastPulseTime
	if elapsed <= t.debounceUS {
		return
	}
	t.pulseInterval = elapsed
	t.lastPulseTime = now
	t.newData = true
}

// Snapshot drains the cell: if a fresh interval is pending, it is returned
// and the flag cleared as one indivisible operation with respect to
// HandlePulse. Exclusion is a masked-interrupt window lasting two copies
// and a store, never a lock the ISR could collide with.
func (t *Tach) Snapshot() (intervalUS uint64, ok bool) {
	state := disableInterrupts()
	if t.newData {
		intervalUS = t.pulseInterval
		t.newData = false
		ok = true
	}
	restoreInterrupts(state)
	return intervalUS, ok
}

// LastPulseTime returns the timestamp of the most recently accepted edge.
// The copy is taken under the interrupt guard: on 32-bit targets a plain
// 64-bit read could tear against the ISR store.
func (t *Tach) LastPulseTime() uint64 {
	state := disableInterrupts()
	ts := t.lastPulseTime
	restoreInterrupts(state)
	return ts
}

// SeedLastPulse initializes the accepted-edge timestamp, establishing the
// baseline the first real edge and the stall check measure against.
func (t *Tach) SeedLastPulse(now uint64) {
	state := disableInterrupts()
	t.lastPulseTime = now
	t.pulseInterval = 0
	t.newData = false
	restoreInterrupts(state)
}
