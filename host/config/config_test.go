package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gotach.yaml")
	content := `
serial:
  port: /dev/ttyUSB1
mqtt:
  broker: broker.local
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB1", cfg.Serial.Port)
	assert.Equal(t, "broker.local", cfg.MQTT.Broker)
	// Unset fields fall back to defaults.
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, 1883, cfg.MQTT.Port)
	assert.Equal(t, "gotach/rpm", cfg.MQTT.Topic)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gotach.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serial: [broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gotach.yaml")

	cfg := Default()
	cfg.MQTT.Broker = "broker.local"
	cfg.Recorder.Path = ""
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
