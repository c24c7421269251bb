package core

import "fmt"

// ReportWriter receives one formatted telemetry line per completed cycle.
// Targets point it at a UART; the host tests capture it in memory.
type ReportWriter func(line string)

// FormatReport renders the telemetry line: elapsed milliseconds since
// boot, supply voltage with two decimals, and the median RPM.
func FormatReport(elapsedMS uint64, voltage float32, rpm uint32) string {
	return fmt.Sprintf("%d,%.2f,%d\n", elapsedMS, voltage, rpm)
}
