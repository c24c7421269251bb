//go:build rp2040

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

	// Voltage sense channel, bound through the core's ADC hooks. The
	// machine package scales conversions to 16 bits regardless of the
	// hardware resolution.
	machine.InitADC()
	voltADC = machine.ADC{Pin: PIN_VOLT}
	voltADC.Configure(machine.ADCConfig{})
	core.ADCSample = voltADC.Get

	monitor = core.NewMonitor(core.DefaultConfig(), emitReport)
	monitor.Voltage().MaxCount = 0xFFFF
	monitor.Voltage().DividerRatio = VOLT_DIVIDER_RATIO

	initDisplay()

	// Tach input. The ISR does nothing but timestamp and hand off; all
	// policy lives in the main loop.
	tach := monitor.Tach()
	PIN_TACH.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	err := PIN_TACH.SetInterrupt(machine.PinRising, func(machine.Pin) {
		tach.HandlePulse(core.NowMicros())
	})
	if err != nil {
		println("tach interrupt unavailable:", err.Error())
	}

	tach.SeedLastPulse(core.NowMicros())

	// Tight poll, no sleep: at 30k RPM pulses arrive every 2ms and an
	// unconsumed interval is overwritten by the next edge.
	for {
		if monitor.Step() {
			updateDisplay(monitor.LastRPM())
		}
	}
}

// emitReport writes one telemetry line to the USB serial console.
func emitReport(line string) {
	print(line)
}
