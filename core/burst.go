package core

// SamplerState is the burst sampler's per-cycle state.
type SamplerState uint8

const (
	StateCollecting SamplerState = iota
	StateStalled
	StateComplete
)

func (s SamplerState) String() string {
	switch s {
	case StateCollecting:
		return "collecting"
	case StateStalled:
		return "stalled"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// CompleteReason records which condition ended a cycle.
type CompleteReason uint8

const (
	ReasonNone       CompleteReason = iota
	ReasonBurstFull                 // Burst reached capacity
	ReasonStalled                   // No accepted edge within the stall threshold
	ReasonTimeout                   // Cycle exceeded the burst timeout
)

// MicrosPerMinute is the numerator of the interval-to-RPM conversion.
const MicrosPerMinute = 60000000

// rpmFromInterval converts an inter-pulse interval to whole RPM, rounded
// to nearest. The caller guarantees intervalUS > 0.
func rpmFromInterval(intervalUS uint64, pulsesPerRev uint32) uint32 {
	d := intervalUS * uint64(pulsesPerRev)
	return uint32((MicrosPerMinute + d/2) / d)
}

// BurstSampler accumulates one bounded burst of RPM samples per
// measurement cycle. Poll is a non-blocking step meant to run on every
// main-loop pass; it checks, in this order, stall, fresh data, timeout.
// The ordering is load-bearing: a stalled spindle must zero the report
// before the timeout path can publish stale samples.
type BurstSampler struct {
	cfg  Config
	tach *Tach

	state      SamplerState
	reason     CompleteReason
	cycleStart uint64   // Microsecond timestamp of Begin
	burst      []uint32 // RPM samples of the current cycle
}

// NewBurstSampler returns a sampler in the collecting state with an empty
// burst. Call Begin before the first Poll.
func NewBurstSampler(cfg Config, tach *Tach) *BurstSampler {
	cfg.Sanitize()
	return &BurstSampler{
		cfg:   cfg,
		tach:  tach,
		burst: make([]uint32, 0, cfg.BurstCapacity),
	}
}

// Begin starts a fresh measurement cycle at time now.
func (s *BurstSampler) Begin(now uint64) {
	s.burst = s.burst[:0]
	s.cycleStart = now
	s.state = StateCollecting
	s.reason = ReasonNone
}

// Poll runs one scheduling opportunity. It never sleeps or yields; the
// caller re-invokes it at its finest granularity so that sub-millisecond
// inter-pulse gaps are not missed. Returns true once the cycle is
// complete and the burst is ready for reduction.
func (s *BurstSampler) Poll(now uint64) bool {
	if s.state == StateComplete {
		return true
	}

	// Stall: no accepted edge for longer than the threshold means the
	// tool is stopped or below the measurable floor. The burst is
	// replaced by zeros wholesale, forcing the median to zero now
	// instead of letting pre-stall samples ride out the timeout.
	if now-s.tach.LastPulseTime() > s.cfg.StallThresholdUS {
		s.state = StateStalled
		s.burst = s.burst[:0]
		for len(s.burst) < s.cfg.BurstCapacity {
			s.burst = append(s.burst, 0)
		}
		s.state = StateComplete
		s.reason = ReasonStalled
		return true
	}

	// Drain: take the pending interval, if any. A zero interval is
	// unset data and is skipped rather than divided by.
	if interval, ok := s.tach.Snapshot(); ok && interval > 0 {
		s.burst = append(s.burst, rpmFromInterval(interval, s.cfg.PulsesPerRev))
		if len(s.burst) >= s.cfg.BurstCapacity {
			s.state = StateComplete
			s.reason = ReasonBurstFull
			return true
		}
	}

	// Timeout: bound the cycle's wall-clock time so a report goes out
	// even at low pulse rates. Partial bursts, including empty ones,
	// are handed off as-is.
	if now-s.cycleStart > s.cfg.BurstTimeoutMS*1000 {
		s.state = StateComplete
		s.reason = ReasonTimeout
		return true
	}

	return false
}

// State returns the sampler's current state.
func (s *BurstSampler) State() SamplerState {
	return s.state
}

// Reason returns what completed the current cycle, or ReasonNone while
// still collecting.
func (s *BurstSampler) Reason() CompleteReason {
	return s.reason
}

// Samples returns the burst collected so far. The slice is reused across
// cycles; callers must not retain it past the next Begin.
func (s *BurstSampler) Samples() []uint32 {
	return s.burst
}
