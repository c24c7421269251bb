//go:build rp2040

package main

import "machine"

const (
	// Tach input: open-collector hall sensor, one pulse per revolution,
	// rising edge on the release.
	PIN_TACH = machine.GP15

	// Supply voltage sense behind the external divider.
	PIN_VOLT = machine.ADC0 // GPIO26

	// Supply sense divider: 3:1 in front of the pin keeps a 12V rail
	// inside the 3.3V ADC range.
	VOLT_DIVIDER_RATIO = 4.0

	// LCD readout on I2C0.
	PIN_LCD_SDA = machine.GP4
	PIN_LCD_SCL = machine.GP5
	LCD_ADDR    = 0x27

	UART_BAUD_RATE = 115200
)
