package collector

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotach/host/telemetry"
)

var errPortClosed = errors.New("port closed")

// scriptPort replays canned serial chunks, then fails like a closed
// device.
type scriptPort struct {
	chunks   [][]byte
	timeouts int // io.EOF reads to interleave before each chunk
}

func (p *scriptPort) Read(b []byte) (int, error) {
	if p.timeouts > 0 {
		p.timeouts--
		return 0, io.EOF
	}
	if len(p.chunks) == 0 {
		return 0, errPortClosed
	}
	n := copy(b, p.chunks[0])
	if n < len(p.chunks[0]) {
		p.chunks[0] = p.chunks[0][n:]
	} else {
		p.chunks = p.chunks[1:]
	}
	return n, nil
}

func (p *scriptPort) Write(b []byte) (int, error) { return len(b), nil }
func (p *scriptPort) Close() error                { return nil }
func (p *scriptPort) Flush() error                { return nil }

// recordSink collects everything published to it.
type recordSink struct {
	readings []telemetry.Reading
}

func (s *recordSink) Publish(r telemetry.Reading) error {
	s.readings = append(s.readings, r)
	return nil
}

// failSink always errors.
type failSink struct{ calls int }

func (s *failSink) Publish(telemetry.Reading) error {
	s.calls++
	return errors.New("sink down")
}

func TestCollectorFansOutReadings(t *testing.T) {
	port := &scriptPort{
		chunks: [][]byte{
			[]byte("100,12.01,28350\n2"),
			[]byte("00,12.00,28360\n"),
		},
		timeouts: 2,
	}
	sink := &recordSink{}

	c := New(port, sink)
	err := c.Run(context.Background())
	require.ErrorIs(t, err, errPortClosed)

	require.Len(t, sink.readings, 2)
	assert.Equal(t, uint32(28350), sink.readings[0].RPM)
	assert.Equal(t, uint32(28360), sink.readings[1].RPM)
	assert.Equal(t, 12.00, sink.readings[1].Voltage)

	readings, dropped, sinkErrors := c.Stats()
	assert.Equal(t, uint64(2), readings)
	assert.Zero(t, dropped)
	assert.Zero(t, sinkErrors)
}

func TestCollectorSinkErrorDoesNotStopOthers(t *testing.T) {
	port := &scriptPort{
		chunks: [][]byte{[]byte("100,12.01,500\n")},
	}
	bad := &failSink{}
	good := &recordSink{}

	c := New(port, bad, good)
	err := c.Run(context.Background())
	require.ErrorIs(t, err, errPortClosed)

	assert.Equal(t, 1, bad.calls)
	require.Len(t, good.readings, 1)

	_, _, sinkErrors := c.Stats()
	assert.Equal(t, uint64(1), sinkErrors)
}

func TestCollectorStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(&scriptPort{timeouts: 1 << 30})
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("collector did not observe cancellation")
	}
}
