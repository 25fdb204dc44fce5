// Package output provides utilities for formatting and displaying comparison results.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/mortgage-compare/internal/comparison"
	"github.com/iwvelando/mortgage-compare/pkg/format"
	"github.com/iwvelando/mortgage-compare/pkg/validation"
)

// Row is one lender with the error from its calculation, if any.
type Row struct {
	Entry comparison.LoanEntry
	Err   error
}

// Rows pairs entries with the per-entry errors returned by CalculateAll.
func Rows(entries []comparison.LoanEntry, errs []error) []Row {
	rows := make([]Row, len(entries))
	for i, entry := range entries {
		rows[i] = Row{Entry: entry}
		if i < len(errs) {
			rows[i].Err = errs[i]
		}
	}
	return rows
}

// Best returns the index of the calculated row with the lowest total
// payment, or -1 when nothing was calculated.
func Best(rows []Row) int {
	best := -1
	for i, row := range rows {
		if row.Err != nil || !row.Entry.Calculated() {
			continue
		}
		if best == -1 || row.Entry.TotalPayment < rows[best].Entry.TotalPayment {
			best = i
		}
	}
	return best
}

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, rows []Row, f *format.Formatter) {
	for i, row := range rows {
		entry := row.Entry
		fmt.Fprintf(w, "--- Results for %s ---\n", validation.LenderLabel(i, entry.Name))
		fmt.Fprintf(w, "Rate type       | %s\n", entry.RateType.Label())
		fmt.Fprintf(w, "Applied rate    | %s\n", format.Rate(entry.BaseRate, entry.Over35YearsRate, entry.InsuranceRate))
		fmt.Fprintf(w, "Loan amount     | %s\n", f.LoanAmount(entry.LoanAmount))
		fmt.Fprintf(w, "Term            | %d年\n", entry.LoanTerm)
		if row.Err != nil {
			fmt.Fprintf(w, "Not calculated  | %v\n", row.Err)
		} else if entry.Calculated() {
			fmt.Fprintf(w, "Monthly payment | %s\n", f.Yen(entry.MonthlyPayment))
			fmt.Fprintf(w, "Total payment   | %s\n", f.ManYen(entry.TotalPayment))
			fmt.Fprintf(w, "Total interest  | %s\n", f.ManYen(entry.TotalInterest))
		}
		fmt.Fprintf(w, "\n")
	}

	if best := Best(rows); best >= 0 && len(rows) > 1 {
		fmt.Fprintf(w, "Lowest total payment: %s (%s)\n",
			validation.LenderLabel(best, rows[best].Entry.Name), f.ManYen(rows[best].Entry.TotalPayment))
	}
}

// CsvFormat writes the rows in comma-separated value format. Amounts are
// plain yen so the file stays machine-readable.
func CsvFormat(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	header := []string{
		"name", "rate type", "base rate", "over 35 years rate", "insurance rate", "applied rate",
		"loan amount (man-yen)", "loan term (years)", "monthly payment", "total payment", "total interest", "error",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		entry := row.Entry
		record := []string{
			entry.Name,
			string(entry.RateType),
			formatFloat(entry.BaseRate),
			formatFloat(entry.Over35YearsRate),
			formatFloat(entry.InsuranceRate),
			format.Rate(entry.BaseRate, entry.Over35YearsRate, entry.InsuranceRate),
			formatFloat(entry.LoanAmount),
			strconv.Itoa(entry.LoanTerm),
			"", "", "", "",
		}
		if row.Err != nil {
			record[11] = row.Err.Error()
		} else if entry.Calculated() {
			record[8] = strconv.FormatInt(entry.MonthlyPayment, 10)
			record[9] = strconv.FormatInt(entry.TotalPayment, 10)
			record[10] = strconv.FormatInt(entry.TotalInterest, 10)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CsvString returns the CSV output as a string.
func CsvString(rows []Row) (string, error) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, rows); err != nil {
		return "", fmt.Errorf("failed to render CSV: %w", err)
	}
	return buf.String(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
