// Package telemetry decodes the tach firmware's serial output: one CSV
// line per measurement cycle, `<elapsed_ms>,<voltage>,<rpm>`.
package telemetry

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Reading is one decoded telemetry line.
type Reading struct {
	ElapsedMS uint64    // Firmware uptime when the cycle completed
	Voltage   float64   // Supply voltage in volts
	RPM       uint32    // Median RPM of the completed burst
	At        time.Time // Host receive time
}

// ParseLine decodes one telemetry line. A trailing newline or carriage
// return is tolerated.
func ParseLine(line string, at time.Time) (Reading, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), ",")
	if len(fields) != 3 {
		return Reading{}, fmt.Errorf("telemetry: expected 3 fields, got %d in %q", len(fields), line)
	}

	elapsed, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Reading{}, fmt.Errorf("telemetry: bad elapsed_ms %q: %w", fields[0], err)
	}

	voltage, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Reading{}, fmt.Errorf("telemetry: bad voltage %q: %w", fields[1], err)
	}
	if voltage < 0 {
		return Reading{}, fmt.Errorf("telemetry: negative voltage %q", fields[1])
	}

	rpm, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return Reading{}, fmt.Errorf("telemetry: bad rpm %q: %w", fields[2], err)
	}

	return Reading{
		ElapsedMS: elapsed,
		Voltage:   voltage,
		RPM:       uint32(rpm),
		At:        at,
	}, nil
}

// maxPending bounds line reassembly so a stream with no newlines (wrong
// baud rate, binary noise) cannot grow the buffer without limit.
const maxPending = 4096

// Stream reassembles raw serial chunks into readings. Lines that fail to
// parse - boot noise, partial lines after reconnect - are counted and
// skipped, never surfaced as errors.
type Stream struct {
	pending []byte
	dropped int
}

// Feed appends a raw chunk and returns the readings completed by it.
func (s *Stream) Feed(chunk []byte, at time.Time) []Reading {
	s.pending = append(s.pending, chunk...)

	var out []Reading
	for {
		idx := bytes.IndexByte(s.pending, '\n')
		if idx < 0 {
			break
		}

		line := string(s.pending[:idx])
		s.pending = s.pending[idx+1:]

		r, err := ParseLine(line, at)
		if err != nil {
			s.dropped++
			continue
		}
		out = append(out, r)
	}

	if len(s.pending) > maxPending {
		s.pending = s.pending[:0]
		s.dropped++
	}
	return out
}

// Dropped returns how many lines were discarded as unparseable.
func (s *Stream) Dropped() int {
	return s.dropped
}
