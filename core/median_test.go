package core

import "testing"

func TestMedian(t *testing.T) {
	tests := []struct {
		name    string
		samples []uint32
		want    uint32
	}{
		{"empty", nil, 0},
		{"single", []uint32{5}, 5},
		{"odd full burst", []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9}, 5},
		{"even upper median", []uint32{1, 2, 3, 4}, 3},
		{"unsorted input", []uint32{9, 1, 8, 2, 7, 3, 6, 4, 5}, 5},
		{"outlier resistant", []uint32{30000, 30010, 65000, 29990, 30005}, 30005},
		{"all zeros", []uint32{0, 0, 0, 0, 0, 0, 0, 0, 0}, 0},
		{"zero padded minority", []uint32{100, 200, 300, 0, 0, 0, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		if got := Median(tt.samples); got != tt.want {
			t.Errorf("%s: Median(%v) = %d, want %d", tt.name, tt.samples, got, tt.want)
		}
	}
}

func TestMedianLeavesInputAlone(t *testing.T) {
	samples := []uint32{9, 1, 5}
	Median(samples)

	if samples[0] != 9 || samples[1] != 1 || samples[2] != 5 {
		t.Errorf("Median reordered caller's slice: %v", samples)
	}
}
