package collector

import (
	"time"

	"gotach/host/telemetry"
)

// wirePayload is the JSON shape shared by the MQTT and websocket feeds.
type wirePayload struct {
	ElapsedMS uint64  `json:"elapsed_ms"`
	Voltage   float64 `json:"voltage"`
	RPM       uint32  `json:"rpm"`
	At        string  `json:"at"`
}

func toWire(r telemetry.Reading) wirePayload {
	return wirePayload{
		ElapsedMS: r.ElapsedMS,
		Voltage:   r.Voltage,
		RPM:       r.RPM,
		At:        r.At.Format(time.RFC3339Nano),
	}
}
