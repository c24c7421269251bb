package core

// NowMicros returns the monotonic microsecond timestamp used to stamp
// pulse edges and to drive the stall and burst-timeout checks.
func NowMicros() uint64 {
	return nowMicros()
}

// NowMillis returns monotonic milliseconds since boot, used for the
// elapsed-time field of the telemetry line.
func NowMillis() uint64 {
	return nowMicros() / 1000
}
