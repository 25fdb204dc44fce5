package validation

import (
	"strings"
	"testing"
)

func TestValidateSurcharge(t *testing.T) {
	tests := []struct {
		name       string
		termYears  int
		surcharge  float64
		expectWarn bool
	}{
		{
			name:       "Surcharge on a long term",
			termYears:  40,
			surcharge:  0.2,
			expectWarn: false,
		},
		{
			name:       "Surcharge on exactly 35 years",
			termYears:  35,
			surcharge:  0.2,
			expectWarn: true,
		},
		{
			name:       "Surcharge on a short term",
			termYears:  20,
			surcharge:  0.1,
			expectWarn: true,
		},
		{
			name:       "No surcharge",
			termYears:  20,
			surcharge:  0,
			expectWarn: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := ValidateSurcharge("Test Bank", tt.termYears, tt.surcharge)
			if tt.expectWarn && warning == "" {
				t.Errorf("ValidateSurcharge() expected warning but got none")
			}
			if !tt.expectWarn && warning != "" {
				t.Errorf("ValidateSurcharge() unexpected warning: %s", warning)
			}
			if tt.expectWarn && !strings.Contains(warning, "Test Bank") {
				t.Errorf("warning should name the lender: %s", warning)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	cv := ConfigValidator{
		Lenders: []LenderConfig{
			{Name: "A Bank", LoanAmount: 3000, LoanTerm: 35},
			{Name: "B Bank", LoanAmount: 3000, LoanTerm: 30, Over35YearsRate: 0.2},
			{Name: "", LoanAmount: 0, LoanTerm: 35},
			{Name: "A Bank", LoanAmount: 2500, LoanTerm: 40, Over35YearsRate: 0.2},
		},
	}

	warnings := cv.ValidateAll()
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}

	expected := []string{
		"Lender 2 (B Bank) has an over-35-year surcharge",
		"Lender 3 has no loan amount",
		"Lender 4 (A Bank) shares its name with Lender 1 (A Bank)",
	}
	for i, want := range expected {
		if !strings.Contains(warnings[i], want) {
			t.Errorf("warning %d = %q, expected it to contain %q", i, warnings[i], want)
		}
	}
}

func TestValidateAllEmpty(t *testing.T) {
	cv := ConfigValidator{}
	if warnings := cv.ValidateAll(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestLenderLabel(t *testing.T) {
	if got := LenderLabel(0, "  A Bank "); got != "Lender 1 (A Bank)" {
		t.Errorf("LenderLabel() = %q", got)
	}
	if got := LenderLabel(2, ""); got != "Lender 3" {
		t.Errorf("LenderLabel() = %q", got)
	}
}
