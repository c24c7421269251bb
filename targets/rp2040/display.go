//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/hd44780i2c"
)

var (
	lcd      hd44780i2c.Device
	lcdReady bool
)

// initDisplay brings up the 16x2 character LCD. The readout is optional
// kit; failure to probe it leaves the tach running headless.
func initDisplay() {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: PIN_LCD_SDA,
		SCL: PIN_LCD_SCL,
	})
	if err != nil {
		return
	}

	lcd = hd44780i2c.New(machine.I2C0, LCD_ADDR)
	if err := lcd.Configure(hd44780i2c.Config{Width: 16, Height: 2}); err != nil {
		return
	}

	lcd.ClearDisplay()
	lcd.Print([]byte("RPM"))
	lcdReady = true
}

// updateDisplay rewrites the second LCD row with the latest median RPM.
// Called once per completed cycle, well outside burst collection.
func updateDisplay(rpm uint32) {
	if !lcdReady {
		return
	}

	var buf [16]byte
	line := appendRPM(buf[:0], rpm)
	for len(line) < 16 {
		line = append(line, ' ')
	}

	lcd.SetCursor(0, 1)
	lcd.Print(line)
}

// appendRPM formats rpm as decimal without pulling fmt into the hot path.
func appendRPM(dst []byte, rpm uint32) []byte {
	if rpm == 0 {
		return append(dst, '0')
	}

	var digits [10]byte
	pos := len(digits)
	for rpm > 0 {
		pos--
		digits[pos] = byte('0' + rpm%10)
		rpm /= 10
	}
	return append(dst, digits[pos:]...)
}
