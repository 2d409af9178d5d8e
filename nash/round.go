package nash

import (
	"math"
)

// RoundingScale is the number of decimal places every extracted utility
// and probability is rounded to.
const RoundingScale = 2

var roundingFactor = math.Pow10(RoundingScale)

// Round rounds v to RoundingScale decimal places, halves away from zero.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	r := math.Round(v*roundingFactor) / roundingFactor
	if r == 0 {
		// Drop the sign of -0.
		return 0
	}

	return r
}
