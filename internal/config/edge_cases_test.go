package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-compare/pkg/loans"
	"go.uber.org/zap"
)

// TestLenderEdgeCases tests edge cases of lenders read from a lenders file
func TestLenderEdgeCases(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name        string
		lender      string
		expectError bool
		description string
	}{
		{
			name:        "Zero interest rate",
			lender:      "baseRate: 0\n    loanAmount: 1200\n    loanTerm: 10",
			expectError: false,
			description: "Should split the principal evenly",
		},
		{
			name:        "Very high interest rate",
			lender:      "baseRate: 50\n    loanAmount: 1000\n    loanTerm: 5",
			expectError: false,
			description: "Should handle a very high rate",
		},
		{
			name:        "Longest term with surcharge",
			lender:      "baseRate: 1.8\n    over35YearsRate: 0.2\n    loanAmount: 3000\n    loanTerm: 50",
			expectError: false,
			description: "Should accept the longest term",
		},
		{
			name:        "One year term",
			lender:      "baseRate: 1.5\n    loanAmount: 100\n    loanTerm: 1",
			expectError: false,
			description: "Should accept the shortest term",
		},
		{
			name:        "Term beyond range",
			lender:      "baseRate: 1.5\n    loanAmount: 3000\n    loanTerm: 60",
			expectError: true,
			description: "Should reject a term longer than 50 years",
		},
		{
			name:        "Negative rate",
			lender:      "baseRate: -0.5\n    loanAmount: 3000\n    loanTerm: 35",
			expectError: true,
			description: "Should reject a negative rate",
		},
		{
			name:        "Missing amount",
			lender:      "baseRate: 1.5\n    loanTerm: 35",
			expectError: true,
			description: "Should reject a lender without a loan amount",
		},
		{
			name:        "Japanese rate type label",
			lender:      "rateType: 固定金利\n    baseRate: 1.5\n    loanAmount: 3000\n    loanTerm: 35",
			expectError: false,
			description: "Should accept the rate type label shown in the UI",
		},
		{
			name:        "Overflowing amount",
			lender:      "baseRate: 1.5\n    loanAmount: 1e15\n    loanTerm: 35",
			expectError: true,
			description: "Should reject an amount whose totals cannot be represented",
		},
		{
			name:        "Unknown rate type",
			lender:      "rateType: hybrid\n    baseRate: 1.5\n    loanAmount: 3000\n    loanTerm: 35",
			expectError: true,
			description: "Should reject a rate type other than fixed or variable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := "lenders:\n  - name: Edge\n    " + tt.lender + "\n"
			conf, err := LoadConfigurationFromReader(strings.NewReader(data))
			if err != nil {
				t.Fatalf("LoadConfigurationFromReader() error = %v", err)
			}

			c := conf.Comparison(logger)
			entry, err := c.Calculate(0)
			if tt.expectError {
				if err == nil {
					t.Errorf("%s: expected error but got none", tt.description)
				} else if !errors.Is(err, loans.ErrInvalidInput) {
					t.Errorf("%s: expected an invalid input error, got %v", tt.description, err)
				}
				if entry.MonthlyPayment != 0 {
					t.Errorf("%s: rejected entry should stay uncalculated", tt.description)
				}
				return
			}

			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tt.description, err)
			}
			if entry.MonthlyPayment <= 0 {
				t.Errorf("%s: expected a positive monthly payment, got %d", tt.description, entry.MonthlyPayment)
			}
			if entry.TotalInterest < 0 {
				t.Errorf("%s: total interest should not be negative, got %d", tt.description, entry.TotalInterest)
			}
		})
	}
}

// TestZeroRateSplitsEvenly checks the zero-rate edge case exactly.
func TestZeroRateSplitsEvenly(t *testing.T) {
	data := "lenders:\n  - name: Zero\n    baseRate: 0\n    loanAmount: 1200\n    loanTerm: 10\n"
	conf, err := LoadConfigurationFromReader(strings.NewReader(data))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	entry, err := conf.Comparison(zap.NewNop()).Calculate(0)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if entry.MonthlyPayment != 100000 || entry.TotalPayment != 12000000 || entry.TotalInterest != 0 {
		t.Errorf("unexpected zero-rate results: %+v", entry)
	}
}

// TestEmptyLendersFile tests that an empty file still yields one default entry
func TestEmptyLendersFile(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("output:\n  format: pretty\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	c := conf.Comparison(nil)
	if c.Len() != 1 {
		t.Fatalf("expected a single default entry, got %d", c.Len())
	}
	entry, _ := c.Get(0)
	if entry.BaseRate != 1.5 || entry.LoanTerm != 35 || !entry.IsFixedRate {
		t.Errorf("unexpected default entry: %+v", entry)
	}
}
