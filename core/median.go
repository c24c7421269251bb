package core

import "slices"

// Median returns the middle-ranked value of samples: sort ascending and
// take the element at index len/2. Even-length inputs therefore yield the
// upper median, not the mean of the middle pair; the reduction must stay
// within the value set actually measured. An empty input reports 0. The
// caller's slice is never reordered.
func Median(samples []uint32) uint32 {
	if len(samples) == 0 {
		return 0
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}
