// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"
)

// RoundYen rounds a value to a whole yen. Yen has no minor unit in use so
// every computed amount is settled to an integer.
func RoundYen(val float64) int64 {
	return int64(math.Round(val))
}

// maxYen is the largest float64 below 2^63, so RoundYen never overflows int64.
const maxYen = float64(1<<63 - 1024)

// FitsYen reports whether val is finite and small enough to round to int64.
func FitsYen(val float64) bool {
	return IsFinite(val) && math.Abs(val) <= maxYen
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// RatioWithinTolerance checks whether a/b is within tolerance of want.
func RatioWithinTolerance(a, b, want, tolerance float64) bool {
	if b == 0 {
		return false
	}
	return WithinTolerance(a/b, want, tolerance)
}
