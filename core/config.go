package core

// Default measurement parameters
const (
	// DefaultDebounceThresholdUS rejects edges closer together than a
	// plausible 40,000 RPM at one pulse per revolution.
	DefaultDebounceThresholdUS = 1500

	// DefaultStallThresholdUS declares the spindle stopped after half a
	// second without an accepted pulse.
	DefaultStallThresholdUS = 500000

	// DefaultBurstCapacity is the number of RPM samples per measurement
	// cycle fed to the median filter.
	DefaultBurstCapacity = 9

	// DefaultBurstTimeoutMS bounds how long a cycle may stay collecting,
	// guaranteeing a report even at low pulse rates.
	DefaultBurstTimeoutMS = 200

	DefaultPulsesPerRev = 1
)

// Config holds the measurement parameters. It is fixed at start-up and
// never mutated while the measurement loop runs.
type Config struct {
	PulsesPerRev        uint32 // Qualifying edges per shaft revolution
	DebounceThresholdUS uint64 // Edges closer than this are noise
	StallThresholdUS    uint64 // No edge for this long means stopped
	BurstCapacity       int    // Samples per measurement cycle
	BurstTimeoutMS      uint64 // Max wall-clock time per cycle
}

// DefaultConfig returns the configuration matching the reference hardware
// (single-pulse hall sensor on a spindle).
func DefaultConfig() Config {
	return Config{
		PulsesPerRev:        DefaultPulsesPerRev,
		DebounceThresholdUS: DefaultDebounceThresholdUS,
		StallThresholdUS:    DefaultStallThresholdUS,
		BurstCapacity:       DefaultBurstCapacity,
		BurstTimeoutMS:      DefaultBurstTimeoutMS,
	}
}

// Sanitize clamps fields that must not be zero. Called once before the
// config is handed to the sampler.
func (c *Config) Sanitize() {
	if c.PulsesPerRev < 1 {
		c.PulsesPerRev = 1
	}
	if c.BurstCapacity < 1 {
		c.BurstCapacity = 1
	}
}
