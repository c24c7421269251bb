// gotach-host bridges the tach firmware's serial telemetry to the
// desktop: console log, CSV recording, MQTT publishing and a websocket
// live feed.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"gotach/host/collector"
	"gotach/host/config"
	"gotach/host/serial"
	"gotach/host/storage"
	"gotach/host/telemetry"
)

var (
	configPath = flag.String("config", "gotach.yaml", "Path to YAML configuration")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	quiet      = flag.Bool("quiet", false, "Suppress per-reading console output")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[host] config: %v", err)
	}
	if *device != "" {
		cfg.Serial.Port = *device
	}

	portCfg := serial.DefaultConfig(cfg.Serial.Port)
	portCfg.Baud = cfg.Serial.Baud
	port, err := serial.Open(portCfg)
	if err != nil {
		log.Fatalf("[host] %v", err)
	}
	log.Printf("[host] reading telemetry from %s", cfg.Serial.Port)

	var sinks []collector.Sink
	if !*quiet {
		sinks = append(sinks, collector.LogSink{})
	}

	if cfg.Recorder.Path != "" {
		rec, err := storage.NewCSVRecorder(cfg.Recorder.Path)
		if err != nil {
			log.Fatalf("[host] recorder: %v", err)
		}
		defer rec.Close()
		sinks = append(sinks, recorderSink{rec})
		log.Printf("[host] recording to %s", cfg.Recorder.Path)
	}

	if cfg.MQTT.Broker != "" {
		pub, err := collector.NewMQTTPublisher(cfg.MQTT)
		if err != nil {
			log.Fatalf("[host] %v", err)
		}
		defer pub.Close()
		sinks = append(sinks, pub)
		log.Printf("[host] publishing to mqtt %s topic %s", cfg.MQTT.Broker, cfg.MQTT.Topic)
	}

	var hub *collector.Hub
	if cfg.Websocket.Listen != "" {
		hub = collector.NewHub()
		defer hub.Close()
		sinks = append(sinks, hub)
	}

	col := collector.New(port, sinks...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return col.Run(ctx)
	})

	// Closing the port unblocks a read pending at shutdown.
	g.Go(func() error {
		<-ctx.Done()
		port.Close()
		return nil
	})

	if hub != nil {
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		srv := &http.Server{Addr: cfg.Websocket.Listen, Handler: mux}

		g.Go(func() error {
			log.Printf("[host] websocket feed on %s/ws", cfg.Websocket.Listen)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	readings, dropped, sinkErrors := col.Stats()
	log.Printf("[host] %d readings, %d lines dropped, %d sink errors", readings, dropped, sinkErrors)

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[host] exited: %v", err)
		os.Exit(1)
	}
}

// recorderSink adapts the CSV recorder to the sink interface.
type recorderSink struct {
	rec *storage.CSVRecorder
}

func (s recorderSink) Publish(r telemetry.Reading) error {
	return s.rec.Write(r)
}
