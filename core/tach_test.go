package core

import "testing"

func testConfig() Config {
	cfg := DefaultConfig()
	return cfg
}

func TestPulseAccept(t *testing.T) {
	tach := NewTach(testConfig())
	tach.SeedLastPulse(1000)

	tach.HandlePulse(3000)

	if got := tach.LastPulseTime(); got != 3000 {
		t.Errorf("Expected last pulse time 3000, got %d", got)
	}

	interval, ok := tach.Snapshot()
	if !ok {
		t.Fatal("Expected pending interval after accepted pulse")
	}
	if interval != 2000 {
		t.Errorf("Expected interval 2000, got %d", interval)
	}
}

func TestPulseDebounce(t *testing.T) {
	tach := NewTach(testConfig())
	tach.SeedLastPulse(10000)

	// 1500us after the last accepted edge is still inside the window
	// (boundary is inclusive) - must leave the cell untouched.
	tach.HandlePulse(10000 + DefaultDebounceThresholdUS)

	if got := tach.LastPulseTime(); got != 10000 {
		t.Errorf("Bounced edge mutated last pulse time: got %d", got)
	}
	if _, ok := tach.Snapshot(); ok {
		t.Error("Bounced edge set the new-data flag")
	}

	// One microsecond past the window is a real pulse.
	tach.HandlePulse(10000 + DefaultDebounceThresholdUS + 1)
	interval, ok := tach.Snapshot()
	if !ok {
		t.Fatal("Edge past the debounce window was not accepted")
	}
	if interval != DefaultDebounceThresholdUS+1 {
		t.Errorf("Expected interval %d, got %d", DefaultDebounceThresholdUS+1, interval)
	}
}

func TestPulseDebounceBurst(t *testing.T) {
	// A noise burst of closely spaced edges after one good pulse must be
	// swallowed entirely.
	tach := NewTach(testConfig())
	tach.SeedLastPulse(0)
	tach.HandlePulse(10000)

	for i := uint64(1); i <= 5; i++ {
		tach.HandlePulse(10000 + i*100)
	}

	interval, ok := tach.Snapshot()
	if !ok {
		t.Fatal("Good pulse lost")
	}
	if interval != 10000 {
		t.Errorf("Noise edges corrupted the interval: got %d", interval)
	}
	if got := tach.LastPulseTime(); got != 10000 {
		t.Errorf("Noise edges advanced last pulse time to %d", got)
	}
}

func TestSnapshotClearsFlag(t *testing.T) {
	tach := NewTach(testConfig())
	tach.SeedLastPulse(0)
	tach.HandlePulse(5000)

	if _, ok := tach.Snapshot(); !ok {
		t.Fatal("Expected pending interval")
	}
	if _, ok := tach.Snapshot(); ok {
		t.Error("Second snapshot saw already-consumed data")
	}
}

func TestUnconsumedIntervalOverwritten(t *testing.T) {
	// Two pulses between drains: only the latest interval survives.
	tach := NewTach(testConfig())
	tach.SeedLastPulse(0)
	tach.HandlePulse(10000)
	tach.HandlePulse(14000)

	interval, ok := tach.Snapshot()
	if !ok {
		t.Fatal("Expected pending interval")
	}
	if interval != 4000 {
		t.Errorf("Expected latest interval 4000, got %d", interval)
	}
	if _, ok := tach.Snapshot(); ok {
		t.Error("Overwritten interval resurfaced")
	}
}
