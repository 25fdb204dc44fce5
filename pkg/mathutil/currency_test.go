package mathutil

import (
	"math"
	"testing"
)

func TestRoundYen(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int64
	}{
		{"Round up at midpoint", 91855.5, 91856},
		{"Round down below midpoint", 91855.33, 91855},
		{"Whole number", 83333, 83333},
		{"Repeating fraction", 10000000.0 / 120, 83333},
		{"Zero", 0, 0},
		{"Negative rounds away from zero", -1.5, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundYen(tt.input)
			if result != tt.expected {
				t.Errorf("RoundYen(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Zero", 0, true},
		{"Positive", 1.5, true},
		{"Negative", -3, true},
		{"NaN", math.NaN(), false},
		{"Positive infinity", math.Inf(1), false},
		{"Negative infinity", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsFinite(tt.input); result != tt.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exact match", 100.0, 100.0, 0.01, true},
		{"Within tolerance", 100.0, 100.005, 0.01, true},
		{"Outside tolerance", 100.0, 100.02, 0.01, false},
		{"Negative values within tolerance", -100.0, -100.005, 0.01, true},
		{"Zero tolerance exact", 100.0, 100.0, 0.0, true},
		{"Zero tolerance different", 100.0, 100.001, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestRatioWithinTolerance(t *testing.T) {
	if !RatioWithinTolerance(200, 100, 2, 1e-9) {
		t.Error("expected 200/100 to be within tolerance of 2")
	}
	if RatioWithinTolerance(201, 100, 2, 1e-9) {
		t.Error("expected 201/100 to be outside tolerance of 2")
	}
	if RatioWithinTolerance(1, 0, 0, 1) {
		t.Error("expected zero denominator to report false")
	}
}

func TestFitsYen(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected bool
	}{
		{"Typical total", 38579239, true},
		{"Largest representable", float64(1<<63 - 1024), true},
		{"Two to the 63rd", math.Pow(2, 63), false},
		{"Negative overflow", -1e19, false},
		{"NaN", math.NaN(), false},
		{"Infinity", math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitsYen(tt.val); got != tt.expected {
				t.Errorf("FitsYen(%v) = %v, expected %v", tt.val, got, tt.expected)
			}
			if tt.expected && float64(RoundYen(tt.val)) != math.Round(tt.val) {
				t.Errorf("RoundYen(%v) did not round-trip", tt.val)
			}
		})
	}
}
