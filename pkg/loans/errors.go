package loans

import (
	"errors"
	"fmt"

	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
)

// ErrInvalidInput is matched by every error returned for unusable loan input.
var ErrInvalidInput = errors.New("invalid input")

// Input field names, as used in errors and by the input surfaces.
const (
	FieldBaseRate        = "baseRate"
	FieldOver35YearsRate = "over35YearsRate"
	FieldInsuranceRate   = "insuranceRate"
	FieldLoanAmount      = "loanAmount"
	FieldLoanTerm        = "loanTerm"
)

// InputError describes why one input field was rejected.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %v %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

// Is allows errors.Is(err, ErrInvalidInput).
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Validate checks that every field is finite, rates are not negative and the
// amount and term are positive. Term bounds beyond that are left to callers.
func (in Input) Validate() error {
	rates := []struct {
		field string
		value float64
	}{
		{FieldBaseRate, in.BaseRate},
		{FieldOver35YearsRate, in.Over35YearsRate},
		{FieldInsuranceRate, in.InsuranceRate},
	}
	for _, r := range rates {
		if !mathutil.IsFinite(r.value) {
			return &InputError{Field: r.field, Value: r.value, Reason: "is not a number"}
		}
		if r.value < 0 {
			return &InputError{Field: r.field, Value: r.value, Reason: "must not be negative"}
		}
	}

	if !mathutil.IsFinite(in.LoanAmount) {
		return &InputError{Field: FieldLoanAmount, Value: in.LoanAmount, Reason: "is not a number"}
	}
	if in.LoanAmount <= 0 {
		return &InputError{Field: FieldLoanAmount, Value: in.LoanAmount, Reason: "must be positive"}
	}
	if in.LoanTerm <= 0 {
		return &InputError{Field: FieldLoanTerm, Value: float64(in.LoanTerm), Reason: "must be positive"}
	}
	return nil
}
