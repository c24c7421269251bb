//go:build rp2350

// RP2350 build of the tach monitor. Identical to the RP2040 target minus
// the LCD readout; telemetry goes out over USB serial only.
package main

import (
	"machine"

	"gotach/core"
)

var (
	monitor *core.Monitor
	voltADC machine.ADC
)

func main() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: UART_BAUD_RATE})

	machine.InitADC()
	voltADC = machine.ADC{Pin: PIN_VOLT}
	voltADC.Configure(machine.ADCConfig{})
	core.ADCSample = voltADC.Get

	monitor = core.NewMonitor(core.DefaultConfig(), emitReport)
	monitor.Voltage().MaxCount = 0xFFFF
	monitor.Voltage().DividerRatio = VOLT_DIVIDER_RATIO

	tach := monitor.Tach()
	PIN_TACH.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	err := PIN_TACH.SetInterrupt(machine.PinRising, func(machine.Pin) {
		tach.HandlePulse(core.NowMicros())
	})
	if err != nil {
		println("tach interrupt unavailable:", err.Error())
	}

	tach.SeedLastPulse(core.NowMicros())

	// Tight poll, no sleep; see the burst sampler's overwrite-on-miss
	// contract.
	for {
		monitor.Step()
	}
}

func emitReport(line string) {
	print(line)
}
