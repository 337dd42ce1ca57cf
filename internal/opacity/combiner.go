package opacity

import "math"

// Combine reduces trait records to a single opacity.
//
// The last record seeds the result; every other record scales it by its own
// value over 255. The product is rounded once, half away from zero. An empty
// slice yields 255.
func Combine(records []Tagged) int {
	if len(records) == 0 {
		return MaxOpacity
	}

	base := records[len(records)-1]
	result := ReadTagValue(base)
	for _, mod := range records[:len(records)-1] {
		result *= ReadTagValue(mod) / MaxOpacity
	}

	return int(math.Round(result))
}
