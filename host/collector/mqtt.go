package collector

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"gotach/host/config"
	"gotach/host/telemetry"
)

const (
	mqttConnectTimeout = 10 * time.Second
	mqttPublishTimeout = time.Second
)

// MQTTPublisher forwards readings to a broker topic as JSON, QoS 0. The
// readings are a live gauge; a lost sample is superseded 200ms later.
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
}

// NewMQTTPublisher connects to the broker described by cfg.
func NewMQTTPublisher(cfg config.MQTTConfig) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()

	scheme := "tcp"
	if cfg.UseTLS {
		scheme = "tls"
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	opts.AddBroker(fmt.Sprintf("%s://%s:%d", scheme, cfg.Broker, cfg.Port))
	opts.SetClientID("gotach-host-" + uuid.NewString()[:8])

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(mqttConnectTimeout)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", cfg.Broker, err)
	}

	return &MQTTPublisher{client: client, topic: cfg.Topic}, nil
}

// Publish implements Sink.
func (p *MQTTPublisher) Publish(r telemetry.Reading) error {
	data, err := json.Marshal(toWire(r))
	if err != nil {
		return err
	}

	token := p.client.Publish(p.topic, 0, false, data)
	if token.WaitTimeout(mqttPublishTimeout) {
		return token.Error()
	}
	// Still in flight; paho delivers or drops on its own at QoS 0.
	return nil
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
