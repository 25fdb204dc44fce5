// Package format renders computed loan figures for display.
package format

import (
	"strings"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter groups digits the way the configured language does.
type Formatter struct {
	printer          *message.Printer
	decimalSeparator string
}

// NewFormatter creates a formatter for tag.
func NewFormatter(tag language.Tag) *Formatter {
	p := message.NewPrinter(tag)

	// The printer knows the separator; "0.5" comes back as "0,5" in some locales.
	sep := "."
	if sample := p.Sprintf("%.1f", 0.5); len(sample) == 3 {
		sep = sample[1:2]
	}
	return &Formatter{printer: p, decimalSeparator: sep}
}

// Number returns n with thousands separators (e.g., "38,579,239").
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Decimal returns d rounded to at most places fractional digits, with
// trailing zeros dropped and thousands separators added (e.g., "3,857.924").
func (f *Formatter) Decimal(d decimal.Decimal, places int32) string {
	d = d.Round(places)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	whole := d.Truncate(0)
	intPart := f.printer.Sprintf("%d", whole.IntPart())

	frac := d.Sub(whole)
	if frac.IsZero() {
		return sign + intPart
	}
	fracDigits := strings.TrimPrefix(frac.String(), "0.")
	return sign + intPart + f.decimalSeparator + fracDigits
}

// Yen returns an amount in yen, e.g. "91,855円".
func (f *Formatter) Yen(amount int64) string {
	return f.Number(amount) + "円"
}

// ManYen converts a yen amount into man-yen for display, e.g. 38579239 ->
// "3,857.924万円".
func (f *Formatter) ManYen(amount int64) string {
	d := decimal.NewFromInt(amount).Div(decimal.NewFromInt(constants.ManYen))
	return f.Decimal(d, constants.ManYenDisplayPrecision) + "万円"
}

// LoanAmount returns an entered man-yen amount, e.g. 3000 -> "3,000万円".
func (f *Formatter) LoanAmount(manYen float64) string {
	return f.Decimal(decimal.NewFromFloat(manYen), constants.ManYenDisplayPrecision) + "万円"
}

// Rate returns the summed rate with a fixed number of fractional digits,
// e.g. (1.5, 0.2, 0.3) -> "2.000%". Summing in decimal keeps 0.1+0.2 at 0.3.
func Rate(baseRate, over35YearsRate, insuranceRate float64) string {
	total := decimal.NewFromFloat(baseRate).
		Add(decimal.NewFromFloat(over35YearsRate)).
		Add(decimal.NewFromFloat(insuranceRate))
	return total.StringFixed(constants.AppliedRatePrecision) + "%"
}
