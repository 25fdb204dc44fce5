package comparison

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/iwvelando/mortgage-compare/pkg/loans"
	"github.com/iwvelando/mortgage-compare/pkg/validation"
	"go.uber.org/zap"
)

var (
	// ErrLastEntry is returned when removing would leave no entries.
	ErrLastEntry = errors.New("cannot remove the last entry")

	// ErrIndexOutOfRange is returned for a position outside the collection.
	ErrIndexOutOfRange = errors.New("entry index out of range")

	// ErrEntryNotFound is returned for an unknown entry ID.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrUnknownField is returned by Update for a field that cannot be edited.
	ErrUnknownField = errors.New("unknown field")
)

// Field names an editable input of a LoanEntry.
type Field string

const (
	FieldName            Field = "name"
	FieldRateType        Field = "rateType"
	FieldBaseRate        Field = loans.FieldBaseRate
	FieldOver35YearsRate Field = loans.FieldOver35YearsRate
	FieldInsuranceRate   Field = loans.FieldInsuranceRate
	FieldLoanAmount      Field = loans.FieldLoanAmount
	FieldLoanTerm        Field = loans.FieldLoanTerm
)

// Comparison is an ordered, never empty list of lender entries. Every
// mutation goes through one of its methods. It is not safe for concurrent
// use.
type Comparison struct {
	entries    []LoanEntry
	calculator *loans.Calculator
	validator  *validation.StructValidator
	logger     *zap.Logger
}

// New creates a comparison holding a single default entry.
func New(logger *zap.Logger) *Comparison {
	return FromEntries(logger, nil)
}

// FromEntries creates a comparison from previously entered rows, such as a
// lenders file or an API request. Missing IDs and rate types are filled in.
// An empty list yields a single default entry.
func FromEntries(logger *zap.Logger, entries []LoanEntry) *Comparison {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Comparison{
		calculator: loans.NewCalculator(logger),
		validator:  validation.NewStructValidator(),
		logger:     logger,
	}

	for _, entry := range entries {
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		if entry.RateType == "" {
			entry.RateType = RateTypeFixed
		}
		// Unknown rate types are kept so validation reports them on Calculate.
		if rateType, err := ParseRateType(string(entry.RateType)); err == nil {
			entry.RateType = rateType
		}
		entry.IsFixedRate = entry.RateType == RateTypeFixed
		c.entries = append(c.entries, entry)
	}
	if len(c.entries) == 0 {
		c.entries = append(c.entries, NewEntry())
	}
	return c
}

// Len returns the number of entries.
func (c *Comparison) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in display order.
func (c *Comparison) Entries() []LoanEntry {
	out := make([]LoanEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the entry at index.
func (c *Comparison) Get(index int) (LoanEntry, error) {
	if err := c.checkIndex(index); err != nil {
		return LoanEntry{}, err
	}
	return c.entries[index], nil
}

// IndexOf returns the position of the entry with the given ID.
func (c *Comparison) IndexOf(id string) (int, error) {
	for i := range c.entries {
		if c.entries[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// Add appends a default entry and returns it.
func (c *Comparison) Add() LoanEntry {
	entry := NewEntry()
	c.entries = append(c.entries, entry)

	c.logger.Debug("added entry",
		zap.String("op", "comparison.Add"),
		zap.String("id", entry.ID),
		zap.Int("entries", len(c.entries)),
	)
	return entry
}

// Remove deletes the entry at index. The last remaining entry cannot be
// removed.
func (c *Comparison) Remove(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	if len(c.entries) == 1 {
		return ErrLastEntry
	}

	removed := c.entries[index]
	c.entries = append(c.entries[:index], c.entries[index+1:]...)

	c.logger.Debug("removed entry",
		zap.String("op", "comparison.Remove"),
		zap.String("id", removed.ID),
		zap.Int("entries", len(c.entries)),
	)
	return nil
}

// RemoveByID deletes the entry with the given ID.
func (c *Comparison) RemoveByID(id string) error {
	index, err := c.IndexOf(id)
	if err != nil {
		return err
	}
	return c.Remove(index)
}

// Update parses raw and stores it in one input field of the entry at index.
// On error the entry is left unchanged. A successful edit marks previously
// computed results as stale.
func (c *Comparison) Update(index int, field Field, raw string) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	entry := c.entries[index]
	var err error
	switch field {
	case FieldName:
		entry.Name = strings.TrimSpace(raw)
	case FieldRateType:
		var rateType RateType
		rateType, err = ParseRateType(raw)
		if err == nil {
			entry.setRateType(rateType)
		}
	case FieldBaseRate:
		entry.BaseRate, err = validation.ParseRate(string(field), raw)
	case FieldOver35YearsRate:
		entry.Over35YearsRate, err = validation.ParseRate(string(field), raw)
	case FieldInsuranceRate:
		entry.InsuranceRate, err = validation.ParseRate(string(field), raw)
	case FieldLoanAmount:
		entry.LoanAmount, err = validation.ParseLoanAmount(raw)
	case FieldLoanTerm:
		entry.LoanTerm, err = validation.ParseLoanTerm(raw)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if err != nil {
		return err
	}

	if entry.Calculated() && field != FieldName {
		entry.Stale = true
	}
	c.entries[index] = entry
	return nil
}

// Calculate validates the entry at index, runs the amortization engine and
// overwrites the entry's computed fields. Other entries are not touched.
func (c *Comparison) Calculate(index int) (LoanEntry, error) {
	if err := c.checkIndex(index); err != nil {
		return LoanEntry{}, err
	}

	entry := c.entries[index]
	if err := c.validator.Validate(entry); err != nil {
		return entry, err
	}

	result, err := c.calculator.Calculate(entry.Name, entry.Input())
	if err != nil {
		return entry, err
	}

	entry.apply(result)
	c.entries[index] = entry
	return entry, nil
}

// CalculateAll calculates every entry independently. The returned slice
// holds one error slot per entry, nil where the calculation succeeded.
func (c *Comparison) CalculateAll() []error {
	errs := make([]error, len(c.entries))
	failed := 0
	for i := range c.entries {
		if _, err := c.Calculate(i); err != nil {
			errs[i] = err
			failed++
		}
	}

	c.logger.Debug("calculated entries",
		zap.String("op", "comparison.CalculateAll"),
		zap.Int("entries", len(c.entries)),
		zap.Int("failed", failed),
	)
	return errs
}

// Warnings returns advisory notes about the current entries.
func (c *Comparison) Warnings() []string {
	validator := validation.ConfigValidator{}
	for _, entry := range c.entries {
		validator.Lenders = append(validator.Lenders, validation.LenderConfig{
			Name:            entry.Name,
			LoanAmount:      entry.LoanAmount,
			LoanTerm:        entry.LoanTerm,
			Over35YearsRate: entry.Over35YearsRate,
		})
	}
	return validator.ValidateAll()
}

func (c *Comparison) checkIndex(index int) error {
	if index < 0 || index >= len(c.entries) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.entries))
	}
	return nil
}
