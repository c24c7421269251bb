package core

// Monitor owns one tachometer channel end-to-end: pulse capture, burst
// collection, median reduction, voltage read-out and the telemetry line.
// Every branch of a cycle, including stalls and timeouts, leads back to a
// fresh collecting cycle; nothing here halts the measurement loop.
type Monitor struct {
	cfg     Config
	tach    *Tach
	sampler *BurstSampler
	volts   *VoltageReader
	emit    ReportWriter

	lastRPM uint32
	started bool
}

// NewMonitor wires a monitor from a sanitized config. emit may be nil
// when only LastRPM is consumed.
func NewMonitor(cfg Config, emit ReportWriter) *Monitor {
	cfg.Sanitize()
	tach := NewTach(cfg)
	return &Monitor{
		cfg:     cfg,
		tach:    tach,
		sampler: NewBurstSampler(cfg, tach),
		volts:   NewVoltageReader(),
		emit:    emit,
	}
}

// Tach exposes the shared state cell for the target's pulse ISR.
func (m *Monitor) Tach() *Tach {
	return m.tach
}

// Voltage exposes the voltage reader for target calibration.
func (m *Monitor) Voltage() *VoltageReader {
	return m.volts
}

// LastRPM returns the most recently reported value.
func (m *Monitor) LastRPM() uint32 {
	return m.lastRPM
}

// Step runs one non-blocking scheduling opportunity and must be called
// from the main context as often as possible. Returns true when a cycle
// completed and its line was emitted.
func (m *Monitor) Step() bool {
	now := NowMicros()
	if !m.started {
		m.sampler.Begin(now)
		m.started = true
	}

	if !m.sampler.Poll(now) {
		return false
	}

	rpm := Median(m.sampler.Samples())
	m.lastRPM = rpm
	if m.emit != nil {
		m.emit(FormatReport(NowMillis(), m.volts.Read(), rpm))
	}

	m.sampler.Begin(NowMicros())
	return true
}
