package core

import "testing"

func TestFormatReport(t *testing.T) {
	tests := []struct {
		elapsedMS uint64
		voltage   float32
		rpm       uint32
		want      string
	}{
		{0, 0, 0, "0,0.00,0\n"},
		{1234, 3.3, 60000, "1234,3.30,60000\n"},
		{18, 1.6506, 30000, "18,1.65,30000\n"},
		{999999, 12.005, 1, "999999,12.00,1\n"},
	}

	for _, tt := range tests {
		got := FormatReport(tt.elapsedMS, tt.voltage, tt.rpm)
		if got != tt.want {
			t.Errorf("FormatReport(%d, %v, %d) = %q, want %q",
				tt.elapsedMS, tt.voltage, tt.rpm, got, tt.want)
		}
	}
}
