package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gotach/host/telemetry"
)

// CSVRecorder appends readings to a CSV file, one row per measurement
// cycle. The header is written only when the file is new.
type CSVRecorder struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVRecorder opens (or creates) the recording file in append mode.
func NewCSVRecorder(path string) (*CSVRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording file: %w", err)
	}

	r := &CSVRecorder{
		file:   file,
		writer: csv.NewWriter(file),
	}

	if err := r.writeHeader(); err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

func (r *CSVRecorder) writeHeader() error {
	info, err := r.file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat recording file: %w", err)
	}
	if info.Size() != 0 {
		return nil
	}

	err = r.writer.Write([]string{"iso8601", "elapsed_ms", "voltage", "rpm"})
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	r.writer.Flush()
	return r.writer.Error()
}

// Write appends one reading and flushes it so a crash loses at most the
// row being written.
func (r *CSVRecorder) Write(reading telemetry.Reading) error {
	err := r.writer.Write([]string{
		reading.At.Format(time.RFC3339Nano),
		strconv.FormatUint(reading.ElapsedMS, 10),
		strconv.FormatFloat(reading.Voltage, 'f', 2, 64),
		strconv.FormatUint(uint64(reading.RPM), 10),
	})
	if err != nil {
		return err
	}
	r.writer.Flush()
	return r.writer.Error()
}

// Close flushes and closes the underlying file.
func (r *CSVRecorder) Close() error {
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
