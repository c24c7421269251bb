package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotach/host/telemetry"
)

func TestCSVRecorderWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tach.csv")

	r, err := NewCSVRecorder(path)
	require.NoError(t, err)

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, r.Write(telemetry.Reading{ElapsedMS: 100, Voltage: 11.98, RPM: 28350, At: at}))
	require.NoError(t, r.Close())

	// Reopen and append: no second header.
	r, err = NewCSVRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.Write(telemetry.Reading{ElapsedMS: 300, Voltage: 12.01, RPM: 0, At: at}))
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "iso8601,elapsed_ms,voltage,rpm", lines[0])
	assert.Contains(t, lines[1], ",100,11.98,28350")
	assert.Contains(t, lines[2], ",300,12.01,0")
}
