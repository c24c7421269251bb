//go:build rp2350

package main

import "machine"

const (
	// Tach input, one pulse per revolution, rising edge.
	PIN_TACH = machine.GP15

	// Supply voltage sense behind the external divider.
	PIN_VOLT = machine.ADC0 // GPIO26

	VOLT_DIVIDER_RATIO = 4.0

	UART_BAUD_RATE = 115200
)
