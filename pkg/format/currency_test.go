package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

func TestYen(t *testing.T) {
	f := NewFormatter(language.Japanese)

	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{"Monthly payment", 91855, "91,855円"},
		{"Small amount", 999, "999円"},
		{"Zero", 0, "0円"},
		{"Millions", 38579239, "38,579,239円"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Yen(tt.amount); got != tt.expected {
				t.Errorf("Yen(%d) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestManYen(t *testing.T) {
	f := NewFormatter(language.Japanese)

	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{"Total payment", 38579239, "3,857.924万円"},
		{"Round half up", 85792395, "8,579.24万円"},
		{"Whole man-yen", 10000000, "1,000万円"},
		{"Under one man-yen", 5000, "0.5万円"},
		{"Zero", 0, "0万円"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ManYen(tt.amount); got != tt.expected {
				t.Errorf("ManYen(%d) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestLoanAmount(t *testing.T) {
	f := NewFormatter(language.Japanese)

	if got := f.LoanAmount(3000); got != "3,000万円" {
		t.Errorf("LoanAmount(3000) = %q", got)
	}
	if got := f.LoanAmount(2980.5); got != "2,980.5万円" {
		t.Errorf("LoanAmount(2980.5) = %q", got)
	}
}

func TestDecimalNegative(t *testing.T) {
	f := NewFormatter(language.English)

	if got := f.Decimal(decimal.RequireFromString("-1234.5678"), 2); got != "-1,234.57" {
		t.Errorf("Decimal() = %q, expected %q", got, "-1,234.57")
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name      string
		base      float64
		over35    float64
		insurance float64
		expected  string
	}{
		{"Base only", 1.5, 0, 0, "1.500%"},
		{"All components", 1.5, 0.2, 0.3, "2.000%"},
		{"Binary float artifact avoided", 0.1, 0.2, 0, "0.300%"},
		{"Three decimals", 0.875, 0.2, 0.3, "1.375%"},
		{"Zero", 0, 0, 0, "0.000%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.base, tt.over35, tt.insurance); got != tt.expected {
				t.Errorf("Rate() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
