// Package comparison holds the ordered set of lender entries being compared
// and the commands that edit and calculate them.
package comparison

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/loans"
)

// RateType labels an entry as a fixed or variable rate offer. It does not
// change the calculation.
type RateType string

const (
	RateTypeFixed    RateType = "fixed"
	RateTypeVariable RateType = "variable"
)

// ParseRateType accepts the English names and the labels shown in the UI.
func ParseRateType(raw string) (RateType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fixed", "固定金利", "固定":
		return RateTypeFixed, nil
	case "variable", "変動金利", "変動":
		return RateTypeVariable, nil
	default:
		return "", fmt.Errorf("%w: unknown rate type %q", loans.ErrInvalidInput, raw)
	}
}

// Label returns the display label for the rate type.
func (r RateType) Label() string {
	if r == RateTypeVariable {
		return "変動金利"
	}
	return "固定金利"
}

// LoanEntry is one lender row. The computed fields are zero until the entry
// is calculated and keep their last values when inputs are edited afterwards.
type LoanEntry struct {
	ID              string   `json:"id" yaml:"-"`
	Name            string   `json:"name" yaml:"name"`
	IsFixedRate     bool     `json:"isFixedRate" yaml:"-"`
	RateType        RateType `json:"rateType" yaml:"rateType" mapstructure:"rateType" validate:"oneof=fixed variable"`
	BaseRate        float64  `json:"baseRate" yaml:"baseRate" mapstructure:"baseRate" validate:"finite,gte=0"`
	Over35YearsRate float64  `json:"over35YearsRate" yaml:"over35YearsRate" mapstructure:"over35YearsRate" validate:"finite,gte=0"`
	InsuranceRate   float64  `json:"insuranceRate" yaml:"insuranceRate" mapstructure:"insuranceRate" validate:"finite,gte=0"`
	LoanAmount      float64  `json:"loanAmount" yaml:"loanAmount" mapstructure:"loanAmount" validate:"finite,gt=0"`
	LoanTerm        int      `json:"loanTerm" yaml:"loanTerm" mapstructure:"loanTerm" validate:"gte=1,lte=50"`

	MonthlyPayment int64 `json:"monthlyPayment" yaml:"-"`
	TotalPayment   int64 `json:"totalPayment" yaml:"-"`
	TotalInterest  int64 `json:"totalInterest" yaml:"-"`
	Stale          bool  `json:"stale" yaml:"-"`
}

// NewEntry returns an entry with the default field values.
func NewEntry() LoanEntry {
	return LoanEntry{
		ID:          uuid.NewString(),
		IsFixedRate: true,
		RateType:    RateTypeFixed,
		BaseRate:    constants.DefaultBaseRate,
		LoanTerm:    constants.DefaultLoanTerm,
	}
}

// Calculated reports whether the entry has results to show.
func (e LoanEntry) Calculated() bool {
	return e.MonthlyPayment > 0
}

// Input converts the entry into engine input.
func (e LoanEntry) Input() loans.Input {
	return loans.Input{
		BaseRate:        e.BaseRate,
		Over35YearsRate: e.Over35YearsRate,
		InsuranceRate:   e.InsuranceRate,
		LoanAmount:      e.LoanAmount,
		LoanTerm:        e.LoanTerm,
	}
}

func (e *LoanEntry) setRateType(r RateType) {
	e.RateType = r
	e.IsFixedRate = r == RateTypeFixed
}

func (e *LoanEntry) apply(result loans.Result) {
	e.MonthlyPayment = result.MonthlyPayment
	e.TotalPayment = result.TotalPayment
	e.TotalInterest = result.TotalInterest
	e.Stale = false
}
