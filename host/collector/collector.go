// Package collector drains telemetry lines from the firmware's serial
// console and fans decoded readings out to pluggable sinks.
package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gotach/host/serial"
	"gotach/host/telemetry"
)

// Sink consumes decoded readings. Publish is called from the read loop,
// so implementations must not block for long.
type Sink interface {
	Publish(telemetry.Reading) error
}

// Collector ties a serial port to a set of sinks.
type Collector struct {
	port   serial.Port
	sinks  []Sink
	stream telemetry.Stream

	readings   uint64
	sinkErrors uint64
}

// New returns a collector reading from port and publishing to sinks.
func New(port serial.Port, sinks ...Sink) *Collector {
	return &Collector{
		port:  port,
		sinks: sinks,
	}
}

// Run reads until ctx is canceled or the port fails hard. Read timeouts
// surface as io.EOF from the port layer and just mean "no line yet"; the
// caller unblocks a pending read by closing the port.
func (c *Collector) Run(ctx context.Context) error {
	buf := make([]byte, 256)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := c.port.Read(buf)
		if n > 0 {
			for _, r := range c.stream.Feed(buf[:n], time.Now()) {
				c.dispatch(r)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("serial read: %w", err)
		}
	}
}

func (c *Collector) dispatch(r telemetry.Reading) {
	c.readings++
	for _, s := range c.sinks {
		if err := s.Publish(r); err != nil {
			c.sinkErrors++
			log.Printf("[collector] sink error: %v", err)
		}
	}
}

// Stats reports readings dispatched, unparseable lines skipped, and
// sink failures since start.
func (c *Collector) Stats() (readings uint64, dropped int, sinkErrors uint64) {
	return c.readings, c.stream.Dropped(), c.sinkErrors
}

// LogSink prints each reading, mirroring the firmware console.
type LogSink struct{}

// Publish implements Sink.
func (LogSink) Publish(r telemetry.Reading) error {
	log.Printf("[tach] t=%dms v=%.2fV rpm=%d", r.ElapsedMS, r.Voltage, r.RPM)
	return nil
}
