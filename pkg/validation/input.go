package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/loans"
	"github.com/shopspring/decimal"
	"golang.org/x/text/width"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap allows errors.Is(err, loans.ErrInvalidInput).
func (e *FieldError) Unwrap() error {
	return loans.ErrInvalidInput
}

// FieldErrors is a list of rejected fields reported together.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for i := range fe {
		parts = append(parts, fe[i].Error())
	}
	return fmt.Sprintf("%s: %s", loans.ErrInvalidInput, strings.Join(parts, "; "))
}

// Unwrap allows errors.Is(err, loans.ErrInvalidInput).
func (fe FieldErrors) Unwrap() error {
	return loans.ErrInvalidInput
}

// normalizeNumber folds full-width characters, drops thousands separators and
// strips any of the given unit suffixes.
func normalizeNumber(raw string, suffixes ...string) string {
	s := width.Narrow.String(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ",", "")
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}
	return s
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &FieldError{Field: field, Message: fmt.Sprintf("%q is not a number", s)}
	}
	return d, nil
}

// ParseRate parses a percentage such as "1.5", "0.2%" or "１．５". A blank
// rate is read as zero, matching an untouched surcharge input.
func ParseRate(field, raw string) (float64, error) {
	s := normalizeNumber(raw, "%")
	if s == "" {
		return 0, nil
	}

	d, err := parseDecimal(field, s)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, &FieldError{Field: field, Message: "must not be negative"}
	}
	f, _ := d.Float64()
	return f, nil
}

// ParseLoanAmount parses a loan amount in man-yen, e.g. "3,000" or "3000万円".
func ParseLoanAmount(raw string) (float64, error) {
	s := normalizeNumber(raw, "万円", "万")
	if s == "" {
		return 0, &FieldError{Field: loans.FieldLoanAmount, Message: "is required"}
	}

	d, err := parseDecimal(loans.FieldLoanAmount, s)
	if err != nil {
		return 0, err
	}
	if !d.IsPositive() {
		return 0, &FieldError{Field: loans.FieldLoanAmount, Message: "must be positive"}
	}
	f, _ := d.Float64()
	return f, nil
}

// ParseLoanTerm parses a whole number of years within the accepted term range.
func ParseLoanTerm(raw string) (int, error) {
	s := normalizeNumber(raw, "年")
	if s == "" {
		return 0, &FieldError{Field: loans.FieldLoanTerm, Message: "is required"}
	}

	d, err := parseDecimal(loans.FieldLoanTerm, s)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, &FieldError{Field: loans.FieldLoanTerm, Message: "must be a whole number of years"}
	}
	if d.LessThan(decimal.NewFromInt(constants.MinLoanTerm)) || d.GreaterThan(decimal.NewFromInt(constants.MaxLoanTerm)) {
		return 0, &FieldError{
			Field:   loans.FieldLoanTerm,
			Message: fmt.Sprintf("must be between %d and %d", constants.MinLoanTerm, constants.MaxLoanTerm),
		}
	}
	return int(d.IntPart()), nil
}
