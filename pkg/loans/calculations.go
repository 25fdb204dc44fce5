// Package loans provides the equal-installment amortization calculations
// used to compare mortgage offers.
package loans

import (
	"math"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
	"go.uber.org/zap"
)

// Input holds the loan parameters for a single calculation. Rates are annual
// percentages and LoanAmount is expressed in man-yen.
type Input struct {
	BaseRate        float64
	Over35YearsRate float64
	InsuranceRate   float64
	LoanAmount      float64
	LoanTerm        int // years
}

// Result holds the values produced for a given Input.
type Result struct {
	MonthlyPayment      int64
	TotalPayment        int64
	TotalInterest       int64
	MonthlyPaymentExact float64
	AppliedRate         float64
	Principal           float64
	NumberOfPayments    int
}

// TotalRate sums the three rate components. The over-35 surcharge is added
// regardless of the loan term.
func TotalRate(baseRate, over35YearsRate, insuranceRate float64) float64 {
	return baseRate + over35YearsRate + insuranceRate
}

// Over35SurchargeApplies reports whether a term in years is long enough for
// the over-35 surcharge to be expected.
func Over35SurchargeApplies(termYears int) bool {
	return termYears > constants.Over35YearsThreshold
}

// CalculateMonthlyPayment calculates the unrounded monthly payment for a loan
// using the standard amortization formula.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	periodicInterestRate := annualInterestRate / constants.MonthsPerYear / constants.PercentageMultiplier
	if periodicInterestRate == 0 {
		return principal / float64(termMonths)
	}

	power := math.Pow(1+periodicInterestRate, float64(termMonths))
	return principal * (periodicInterestRate * power) / (power - 1)
}

// Calculate computes the monthly payment, total payment and total interest
// for in. The total is derived from the unrounded monthly payment so the
// rounding error is not multiplied across installments.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	rate := TotalRate(in.BaseRate, in.Over35YearsRate, in.InsuranceRate)
	principal := in.LoanAmount * constants.ManYen
	payments := in.LoanTerm * constants.MonthsPerYear

	monthly := CalculateMonthlyPayment(principal, rate, payments)
	total := monthly * float64(payments)
	if !mathutil.FitsYen(monthly) || !mathutil.FitsYen(total) {
		field, value := FieldLoanAmount, in.LoanAmount
		if rate > 0 && mathutil.FitsYen(principal*float64(payments)) {
			field, value = FieldBaseRate, in.BaseRate
		}
		return Result{}, &InputError{Field: field, Value: value, Reason: "is out of range"}
	}
	totalPayment := mathutil.RoundYen(total)

	return Result{
		MonthlyPayment:      mathutil.RoundYen(monthly),
		TotalPayment:        totalPayment,
		TotalInterest:       mathutil.RoundYen(float64(totalPayment) - principal),
		MonthlyPaymentExact: monthly,
		AppliedRate:         rate,
		Principal:           principal,
		NumberOfPayments:    payments,
	}, nil
}

// Calculator wraps Calculate with logging.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new calculator instance
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Calculate runs the amortization calculation for one loan.
func (c *Calculator) Calculate(name string, in Input) (Result, error) {
	result, err := Calculate(in)
	if err != nil {
		c.logger.Debug("rejected loan input",
			zap.String("op", "loans.Calculate"),
			zap.String("loan", name),
			zap.Error(err),
		)
		return Result{}, err
	}

	c.logger.Debug("calculated loan",
		zap.String("op", "loans.Calculate"),
		zap.String("loan", name),
		zap.Float64("appliedRate", result.AppliedRate),
		zap.Int("payments", result.NumberOfPayments),
		zap.Int64("monthlyPayment", result.MonthlyPayment),
		zap.Int64("totalPayment", result.TotalPayment),
	)
	return result, nil
}
