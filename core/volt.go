package core

// ADCSample performs one raw conversion of the voltage sense channel.
// It is a function var so targets can bind the machine package and host
// tests can substitute a stub.
var ADCSample func() uint16

// VoltSampleCount is the fixed number of back-to-back conversions
// averaged per voltage read-out.
const VoltSampleCount = 10

// VoltageReader averages a short fixed burst of ADC conversions and
// scales the result to volts at the divider input. It runs between
// measurement cycles, never inside burst collection.
type VoltageReader struct {
	VRef         float32 // ADC reference voltage
	DividerRatio float32 // External divider ratio (Vin / Vadc)
	MaxCount     uint16  // Full-scale raw reading (4095 for 12 bits)
}

// NewVoltageReader returns a reader for a 12-bit ADC at 3.3 V reference
// with no external divider.
func NewVoltageReader() *VoltageReader {
	return &VoltageReader{VRef: 3.3, DividerRatio: 1, MaxCount: 4095}
}

// Read averages VoltSampleCount conversions and returns volts. With no
// ADC bound it reports 0.
func (v *VoltageReader) Read() float32 {
	if ADCSample == nil {
		return 0
	}
	var sum uint32
	for i := 0; i < VoltSampleCount; i++ {
		sum += uint32(ADCSample())
	}
	avg := float32(sum) / VoltSampleCount
	return avg / float32(v.MaxCount) * v.VRef * v.DividerRatio
}
