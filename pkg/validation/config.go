package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/loans"
)

// ValidateSurcharge warns when an over-35 surcharge is entered for a term
// that does not exceed 35 years. The surcharge is still added to the rate.
func ValidateSurcharge(lenderName string, termYears int, over35YearsRate float64) string {
	if over35YearsRate > 0 && !loans.Over35SurchargeApplies(termYears) {
		return fmt.Sprintf("%s has an over-%d-year surcharge of %.3f%% but a %d-year term; the surcharge is still applied",
			lenderName, constants.Over35YearsThreshold, over35YearsRate, termYears)
	}
	return ""
}

// ValidateAmount warns when a lender has no loan amount entered yet.
func ValidateAmount(lenderName string, loanAmount float64) string {
	if loanAmount <= 0 {
		return fmt.Sprintf("%s has no loan amount and cannot be calculated", lenderName)
	}
	return ""
}

// ConfigValidator produces advisory warnings for a set of lenders.
type ConfigValidator struct {
	Lenders []LenderConfig
}

// LenderConfig holds the fields the warnings look at.
type LenderConfig struct {
	Name            string
	LoanAmount      float64
	LoanTerm        int
	Over35YearsRate float64
}

// ValidateAll validates every lender and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	seen := make(map[string]int)
	for i, lender := range cv.Lenders {
		label := LenderLabel(i, lender.Name)

		if warning := ValidateAmount(label, lender.LoanAmount); warning != "" {
			warnings = append(warnings, warning)
		}
		if warning := ValidateSurcharge(label, lender.LoanTerm, lender.Over35YearsRate); warning != "" {
			warnings = append(warnings, warning)
		}

		name := strings.TrimSpace(lender.Name)
		if name == "" {
			continue
		}
		if first, ok := seen[name]; ok {
			warnings = append(warnings, fmt.Sprintf("%s shares its name with %s", label, LenderLabel(first, lender.Name)))
			continue
		}
		seen[name] = i
	}

	return warnings
}

// LenderLabel names a lender for messages, falling back to its 1-based
// position when it has no name.
func LenderLabel(index int, name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return fmt.Sprintf("Lender %d (%s)", index+1, trimmed)
	}
	return fmt.Sprintf("Lender %d", index+1)
}
